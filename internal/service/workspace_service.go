package service

import (
	"context"
	"errors"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/repository/scope"
	"ai-chat-workspace-be/internal/repository/specification"
	"ai-chat-workspace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

type IWorkspaceService interface {
	// FindHomeWorkspace returns (nil, nil) when the user has none.
	FindHomeWorkspace(ctx context.Context, userId uuid.UUID) (*entity.Workspace, error)
	// GetOwned returns ErrWorkspaceNotFound unless the workspace exists and
	// belongs to userId.
	GetOwned(ctx context.Context, userId, workspaceId uuid.UUID) (*entity.Workspace, error)
	List(ctx context.Context, userId uuid.UUID) ([]*entity.Workspace, error)
}

type workspaceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWorkspaceService(uowFactory unitofwork.RepositoryFactory) IWorkspaceService {
	return &workspaceService{
		uowFactory: uowFactory,
	}
}

func (s *workspaceService) FindHomeWorkspace(ctx context.Context, userId uuid.UUID) (*entity.Workspace, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.WorkspaceRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.IsHome{},
	)
}

func (s *workspaceService) GetOwned(ctx context.Context, userId, workspaceId uuid.UUID) (*entity.Workspace, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ws, err := uow.WorkspaceRepository().FindOne(ctx,
		specification.ByID{ID: workspaceId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, ErrWorkspaceNotFound
	}
	return ws, nil
}

func (s *workspaceService) List(ctx context.Context, userId uuid.UUID) ([]*entity.Workspace, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.WorkspaceRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Scope(scope.OrderByHomeFirst),
	)
}
