package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/form"
	"github.com/samandr77/microservices/alvaras/internal/mocks"
)

type TestCompanyForm struct {
	f          *form.CompanyForm
	registry   *mocks.MockRegistryLookup
	companies  *mocks.MockCompanySaver
	activities *mocks.MockActivityCreator
}

func NewTestCompanyForm(t *testing.T) *TestCompanyForm {
	t.Helper()

	ctrl := gomock.NewController(t)

	tf := &TestCompanyForm{
		registry:   mocks.NewMockRegistryLookup(ctrl),
		companies:  mocks.NewMockCompanySaver(ctrl),
		activities: mocks.NewMockActivityCreator(ctrl),
	}
	tf.f = form.NewCompanyForm(tf.registry, tf.companies, tf.activities)

	return tf
}

var registryCompany = entity.RegistryCompany{
	CNPJ:      "11.222.333/0001-81",
	Status:    "OK",
	LegalName: "PADARIA PAO QUENTE LTDA",
	TradeName: "PAO QUENTE",
	State:     "SP",
	City:      "CAMPINAS",
	MainActivities: []entity.RegistryActivity{
		{Code: "10.91-1-02", Text: "Fabricação de produtos de padaria"},
	},
	SecondaryActivities: []entity.RegistryActivity{
		{Code: "47.21-1-02", Text: "Padaria e confeitaria com predominância de revenda"},
		{Code: "00.00-0-00", Text: "Não informada"},
		{Code: "56.11-2-03", Text: "Lanchonetes"},
	},
}

func TestCompanyForm_SeedAndSubmit(t *testing.T) {
	t.Parallel()

	tf := NewTestCompanyForm(t)
	ctx := context.Background()

	tf.f.SetPermitTypes(entity.PermitTypeOperating, entity.PermitTypeSanitary)

	tf.registry.EXPECT().Lookup(gomock.Any(), "11222333000181").Return(registryCompany, nil)

	_, err := tf.f.Seed(ctx, "11.222.333/0001-81")
	require.NoError(t, err)

	require.Equal(t, entity.CompanyInput{
		CNPJ:                    "11222333000181",
		LegalName:               "PADARIA PAO QUENTE LTDA",
		TradeName:               "PAO QUENTE",
		State:                   "SP",
		City:                    "CAMPINAS",
		MainActivityCode:        "10.91-1-02",
		MainActivityDescription: "Fabricação de produtos de padaria",
		PermitTypes:             []entity.PermitType{entity.PermitTypeOperating, entity.PermitTypeSanitary},
	}, tf.f.Input)
	require.Len(t, tf.f.Secondary, 2)

	created := tf.f.Input.Apply(entity.Company{ID: uuid.Must(uuid.NewV4())})

	tf.companies.EXPECT().Add(gomock.Any(), tf.f.Input).Return(created, nil)
	tf.activities.EXPECT().ListByCompany(gomock.Any(), created.ID).
		Return([]entity.Activity{{Code: "47.21-1-02"}}, nil)
	tf.activities.EXPECT().Create(gomock.Any(), created.ID, entity.ActivityInput{Code: "56.11-2-03", Description: "Lanchonetes"}).
		Return(entity.Activity{}, nil)

	got, err := tf.f.Submit(ctx)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}

func TestCompanyForm_InvalidCNPJSkipsLookup(t *testing.T) {
	t.Parallel()

	tf := NewTestCompanyForm(t)

	_, err := tf.f.Seed(context.Background(), "11.222.333/0001-00")
	require.ErrorIs(t, err, entity.ErrInvalidCNPJ)
}

func TestCompanyForm_LookupErrorKeepsForm(t *testing.T) {
	t.Parallel()

	tf := NewTestCompanyForm(t)
	tf.f.Input.LegalName = "Digitado à mão"

	rlErr := &entity.RateLimitError{RetryAfter: 20, Err: entity.ErrRegistryRateLimited}
	tf.registry.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(entity.RegistryCompany{}, rlErr)

	_, err := tf.f.Seed(context.Background(), "11222333000181")
	require.ErrorIs(t, err, entity.ErrRegistryRateLimited)
	require.Equal(t, "Digitado à mão", tf.f.Input.LegalName)
}

func TestCompanyForm_SubmitValidation(t *testing.T) {
	t.Parallel()

	tf := NewTestCompanyForm(t)
	tf.f.Input = entity.CompanyInput{CNPJ: "123"}

	_, err := tf.f.Submit(context.Background())

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "cnpj")
	require.Contains(t, verr.Fields, "razaoSocial")
}

func TestCompanyForm_ActivityFailureKeepsCompany(t *testing.T) {
	t.Parallel()

	tf := NewTestCompanyForm(t)
	tf.f.Input = entity.CompanyInput{CNPJ: "11222333000181", LegalName: "Padaria"}
	tf.f.Secondary = []entity.ActivityInput{{Code: "47.21-1-02", Description: "Padaria"}}

	created := tf.f.Input.Apply(entity.Company{ID: uuid.Must(uuid.NewV4())})
	activityErr := errors.New("Erro ao criar atividade")

	tf.companies.EXPECT().Add(gomock.Any(), gomock.Any()).Return(created, nil)
	tf.activities.EXPECT().ListByCompany(gomock.Any(), created.ID).Return(nil, nil)
	tf.activities.EXPECT().Create(gomock.Any(), created.ID, gomock.Any()).Return(entity.Activity{}, activityErr)

	got, err := tf.f.Submit(context.Background())
	require.ErrorIs(t, err, activityErr)
	require.Equal(t, created.ID, got.ID)
}

func TestCompanyForm_ActivityAlreadyImported(t *testing.T) {
	t.Parallel()

	tf := NewTestCompanyForm(t)
	tf.f.Input = entity.CompanyInput{CNPJ: "11222333000181", LegalName: "Padaria"}
	tf.f.Secondary = []entity.ActivityInput{
		{Code: "47.21-1-02", Description: "Padaria"},
		{Code: "56.11-2-03", Description: "Lanchonetes"},
	}

	created := tf.f.Input.Apply(entity.Company{ID: uuid.Must(uuid.NewV4())})

	tf.companies.EXPECT().Add(gomock.Any(), gomock.Any()).Return(created, nil)
	tf.activities.EXPECT().ListByCompany(gomock.Any(), created.ID).Return(nil, nil)
	tf.activities.EXPECT().Create(gomock.Any(), created.ID, tf.f.Secondary[0]).
		Return(entity.Activity{}, entity.ErrAlreadyExists)
	tf.activities.EXPECT().Create(gomock.Any(), created.ID, tf.f.Secondary[1]).
		Return(entity.Activity{ID: uuid.Must(uuid.NewV4())}, nil)

	got, err := tf.f.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}
