package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameRepo struct {
	mock.Mock
}

func newMockGameRepo(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockGameRepo {
	m := &mockGameRepo{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)

	return args.Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)

	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (m *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
