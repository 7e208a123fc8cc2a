package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/mocks"
	"github.com/samandr77/microservices/alvaras/internal/store"
)

func TestCompanies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCompanyGateway(ctrl)
	s := store.NewCompanies(gw)
	ctx := context.Background()

	padaria := entity.Company{ID: uuid.Must(uuid.NewV4()), CNPJ: "11222333000181", LegalName: "Padaria Pão Quente LTDA"}
	gw.EXPECT().List(gomock.Any()).Return([]entity.Company{padaria}, nil)

	_, err := s.Load(ctx)
	require.NoError(t, err)

	in := entity.CompanyInput{CNPJ: "45.997.418/0001-53", LegalName: "Mercado São José", TradeName: "Mercadinho"}
	mercado := in.Apply(entity.Company{ID: uuid.Must(uuid.NewV4())})
	mercado.CNPJ = "45997418000153"

	gw.EXPECT().Create(gomock.Any(), in).Return(mercado, nil)

	_, err = s.Add(ctx, in)
	require.NoError(t, err)
	require.Len(t, s.All(), 2)

	require.Equal(t, []entity.Company{mercado}, s.Search("sao jose"))
	require.Equal(t, []entity.Company{mercado}, s.Search("mercadinho"))
	require.Equal(t, []entity.Company{padaria}, s.Search("11.222"))
	require.Len(t, s.Search(""), 2)

	update := in
	update.City = "Campinas"
	updated := mercado
	updated.City = "Campinas"

	gw.EXPECT().Update(gomock.Any(), mercado.ID, update).Return(updated, nil)

	_, err = s.Update(ctx, mercado.ID, update)
	require.NoError(t, err)

	got, ok := s.ByID(mercado.ID)
	require.True(t, ok)
	require.Equal(t, "Campinas", got.City)

	gw.EXPECT().Delete(gomock.Any(), padaria.ID).Return(errors.New("Erro ao excluir cliente"))
	require.Error(t, s.Delete(ctx, padaria.ID))
	require.Len(t, s.All(), 2)

	gw.EXPECT().Delete(gomock.Any(), padaria.ID).Return(nil)
	require.NoError(t, s.Delete(ctx, padaria.ID))

	_, ok = s.ByID(padaria.ID)
	require.False(t, ok)
}
