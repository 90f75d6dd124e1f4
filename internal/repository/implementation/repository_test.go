package implementation

import (
	"context"
	"testing"
	"time"

	"ai-chat-workspace-be/internal/entity"
	"ai-chat-workspace-be/internal/model"
	"ai-chat-workspace-be/internal/repository/contract"
	"ai-chat-workspace-be/internal/repository/specification"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func strPtr(s string) *string { return &s }

func TestWorkspaceRepository_FindOne(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewWorkspaceRepository(db)
	userId := uuid.New()

	home := &entity.Workspace{UserId: userId, Name: "Home", IsHome: true, Sharing: "private", DefaultModel: strPtr("gpt-4o")}
	other := &entity.Workspace{UserId: userId, Name: "Research", Sharing: "private"}
	require.NoError(t, repo.Create(ctx, home))
	require.NoError(t, repo.Create(ctx, other))
	assert.NotEqual(t, uuid.Nil, home.Id)

	t.Run("home workspace", func(t *testing.T) {
		got, err := repo.FindOne(ctx, specification.UserOwnedBy{UserID: userId}, specification.IsHome{})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, home.Id, got.Id)
		require.NotNil(t, got.DefaultModel)
		assert.Equal(t, "gpt-4o", *got.DefaultModel)
		assert.Nil(t, got.DefaultTemperature)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		got, err := repo.FindOne(ctx, specification.ByID{ID: uuid.New()})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("other user has no home", func(t *testing.T) {
		got, err := repo.FindOne(ctx, specification.UserOwnedBy{UserID: uuid.New()}, specification.IsHome{})
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestAssistantRepository_TwoStepRead(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAssistantRepository(db)
	userId := uuid.New()
	wsA, wsB := uuid.New(), uuid.New()

	linked := &entity.Assistant{UserId: userId, Name: "Writer", Model: "gpt-4o", ImagePath: userId.String() + "/writer.png"}
	unlinked := &entity.Assistant{UserId: userId, Name: "Coder", Model: "gpt-4o"}
	require.NoError(t, repo.Create(ctx, linked))
	require.NoError(t, repo.Create(ctx, unlinked))
	require.NoError(t, repo.Link(ctx, &entity.AssistantWorkspace{UserId: userId, AssistantId: linked.Id, WorkspaceId: wsA}))
	require.NoError(t, repo.Link(ctx, &entity.AssistantWorkspace{UserId: userId, AssistantId: unlinked.Id, WorkspaceId: wsB}))

	links, err := repo.FindWorkspaceLinks(ctx, wsA)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, linked.Id, links[0].AssistantId)

	assistants, err := repo.FindAll(ctx, specification.ByIDs{IDs: []uuid.UUID{links[0].AssistantId}})
	require.NoError(t, err)
	require.Len(t, assistants, 1)
	assert.Equal(t, "Writer", assistants[0].Name)
	assert.True(t, assistants[0].HasImage())

	empty, err := repo.FindWorkspaceLinks(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAssistantRepository_LinksOldestFirst(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAssistantRepository(db)
	userId, workspaceId := uuid.New(), uuid.New()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	newer := &entity.Assistant{UserId: userId, Name: "Newer", Model: "gpt-4o"}
	older := &entity.Assistant{UserId: userId, Name: "Older", Model: "gpt-4o"}
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Link(ctx, &entity.AssistantWorkspace{UserId: userId, AssistantId: newer.Id, WorkspaceId: workspaceId, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Link(ctx, &entity.AssistantWorkspace{UserId: userId, AssistantId: older.Id, WorkspaceId: workspaceId, CreatedAt: base}))

	links, err := repo.FindWorkspaceLinks(ctx, workspaceId)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, older.Id, links[0].AssistantId)
	assert.Equal(t, newer.Id, links[1].AssistantId)
}

func TestWorkspaceScopedRepository_DirectOwnership(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	chats := NewChatRepository(db)
	folders := NewFolderRepository(db)
	userId := uuid.New()
	wsA, wsB := uuid.New(), uuid.New()

	require.NoError(t, chats.Create(ctx, &entity.Chat{UserId: userId, WorkspaceId: wsA, Name: "a1", Model: "gpt-4o"}))
	require.NoError(t, chats.Create(ctx, &entity.Chat{UserId: userId, WorkspaceId: wsA, Name: "a2", Model: "gpt-4o"}))
	require.NoError(t, chats.Create(ctx, &entity.Chat{UserId: userId, WorkspaceId: wsB, Name: "b1", Model: "gpt-4o"}))
	require.NoError(t, folders.Create(ctx, &entity.Folder{UserId: userId, WorkspaceId: wsB, Name: "f", Type: "chats"}))

	got, err := chats.FindByWorkspace(ctx, wsA)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, c := range got {
		assert.Equal(t, wsA, c.WorkspaceId)
	}

	noFolders, err := folders.FindByWorkspace(ctx, wsA)
	require.NoError(t, err)
	assert.Empty(t, noFolders)

	err = chats.Link(ctx, userId, got[0].Id, wsB)
	assert.ErrorIs(t, err, contract.ErrDirectlyOwned)
}

func TestWorkspaceScopedRepository_LinkTables(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	userId := uuid.New()
	wsA, wsB := uuid.New(), uuid.New()

	files := NewFileRepository(db)
	shared := &entity.File{UserId: userId, Name: "shared.pdf", FilePath: "u/shared.pdf", Type: "application/pdf"}
	onlyB := &entity.File{UserId: userId, Name: "b.txt", FilePath: "u/b.txt", Type: "text/plain"}
	require.NoError(t, files.Create(ctx, shared))
	require.NoError(t, files.Create(ctx, onlyB))
	require.NoError(t, files.Link(ctx, userId, shared.Id, wsA))
	require.NoError(t, files.Link(ctx, userId, shared.Id, wsB))
	require.NoError(t, files.Link(ctx, userId, onlyB.Id, wsB))

	inA, err := files.FindByWorkspace(ctx, wsA)
	require.NoError(t, err)
	require.Len(t, inA, 1)
	assert.Equal(t, shared.Id, inA[0].Id)

	inB, err := files.FindByWorkspace(ctx, wsB)
	require.NoError(t, err)
	assert.Len(t, inB, 2)

	tools := NewToolRepository(db)
	tool := &entity.Tool{UserId: userId, Name: "weather", Url: "https://example.com", Schema: []byte(`{"type":"object"}`)}
	require.NoError(t, tools.Create(ctx, tool))
	require.NoError(t, tools.Link(ctx, userId, tool.Id, wsA))

	gotTools, err := tools.FindByWorkspace(ctx, wsA)
	require.NoError(t, err)
	require.Len(t, gotTools, 1)
	assert.JSONEq(t, `{"type":"object"}`, string(gotTools[0].Schema))

	linkKinds := []struct {
		name string
		find func() (int, error)
	}{
		{"prompts", func() (int, error) { r, err := NewPromptRepository(db).FindByWorkspace(ctx, wsA); return len(r), err }},
		{"presets", func() (int, error) { r, err := NewPresetRepository(db).FindByWorkspace(ctx, wsA); return len(r), err }},
		{"models", func() (int, error) { r, err := NewModelRepository(db).FindByWorkspace(ctx, wsA); return len(r), err }},
		{"collections", func() (int, error) { r, err := NewCollectionRepository(db).FindByWorkspace(ctx, wsA); return len(r), err }},
	}
	for _, k := range linkKinds {
		t.Run(k.name+" empty", func(t *testing.T) {
			n, err := k.find()
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}
