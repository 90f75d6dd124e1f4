package implementation

import (
	"context"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/mapper"
	"ai-chat-workspace-be/internal/model"
	"ai-chat-workspace-be/internal/repository/contract"
	"ai-chat-workspace-be/internal/repository/scope"
	"ai-chat-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssistantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssistantMapper
}

func NewAssistantRepository(db *gorm.DB) contract.AssistantRepository {
	return &AssistantRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssistantMapper(),
	}
}

func (r *AssistantRepositoryImpl) Create(ctx context.Context, assistant *entity.Assistant) error {
	m := r.mapper.ToModel(assistant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*assistant = *r.mapper.ToEntity(m)
	return nil
}

func (r *AssistantRepositoryImpl) Link(ctx context.Context, link *entity.AssistantWorkspace) error {
	m := r.mapper.LinkToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.LinkToEntity(m)
	return nil
}

// FindWorkspaceLinks selects only the link rows; assistant rows are read in a
// second query so row-level policies on either table apply independently.
func (r *AssistantRepositoryImpl) FindWorkspaceLinks(ctx context.Context, workspaceId uuid.UUID) ([]*entity.AssistantWorkspace, error) {
	var links []*model.AssistantWorkspace
	query := specification.ByWorkspaceID{WorkspaceID: workspaceId}.Apply(r.db.WithContext(ctx))
	if err := query.Scopes(scope.OrderByCreatedAsc).Find(&links).Error; err != nil {
		return nil, err
	}
	return r.mapper.LinksToEntities(links), nil
}

func (r *AssistantRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assistant, error) {
	var models []*model.Assistant
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
