package store

import (
	"errors"
	"sync"

	"ai-chat-workspace-be/internal/entity"

	"github.com/google/uuid"
)

var ErrHydrationInFlight = errors.New("workspace state is hydrating")

// ChatMessage is a message shown in the active chat view.
type ChatMessage struct {
	Id      uuid.UUID `json:"id"`
	Role    string    `json:"role"`
	Content string    `json:"content"`
}

// ChatAttachment is a file or image attached to the active chat or the
// message being drafted.
type ChatAttachment struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
	Url  string    `json:"url,omitempty"`
}

// ChatView is the ephemeral part of the state: what the user is looking at and
// typing. It is cleared synchronously whenever the workspace changes.
type ChatView struct {
	SelectedChat       *entity.Chat
	ChatMessages       []ChatMessage
	UserInput          string
	IsGenerating       bool
	FirstTokenReceived bool
	ChatFiles          []ChatAttachment
	ChatImages         []ChatAttachment
	NewMessageFiles    []ChatAttachment
	NewMessageImages   []ChatAttachment
	ShowFilesDisplay   bool
}

func emptyChatView() ChatView {
	return ChatView{
		ChatMessages:     []ChatMessage{},
		ChatFiles:        []ChatAttachment{},
		ChatImages:       []ChatAttachment{},
		NewMessageFiles:  []ChatAttachment{},
		NewMessageImages: []ChatAttachment{},
	}
}

// Hydration is everything a finished hydration publishes at once.
type Hydration struct {
	Workspace       *entity.Workspace
	Assistants      []*entity.Assistant
	AssistantImages map[uuid.UUID]string
	Chats           []*entity.Chat
	Folders         []*entity.Folder
	Files           []*entity.File
	Prompts         []*entity.Prompt
	Presets         []*entity.Preset
	Tools           []*entity.Tool
	Models          []*entity.Model
	Collections     []*entity.Collection
	ChatSettings    entity.ChatSettings
}

func emptyHydration() Hydration {
	return Hydration{
		Assistants:      []*entity.Assistant{},
		AssistantImages: map[uuid.UUID]string{},
		Chats:           []*entity.Chat{},
		Folders:         []*entity.Folder{},
		Files:           []*entity.File{},
		Prompts:         []*entity.Prompt{},
		Presets:         []*entity.Preset{},
		Tools:           []*entity.Tool{},
		Models:          []*entity.Model{},
		Collections:     []*entity.Collection{},
	}
}

// Snapshot is a point-in-time copy of a WorkspaceState. Slices are shared
// with the state but never mutated after publication.
type Snapshot struct {
	SessionId   string
	UserId      uuid.UUID
	Generation  uint64
	WorkspaceId uuid.UUID
	Loading     bool
	Hydration
	ChatView
}

// WorkspaceState is the UI state of one client session.
//
// Lifecycle: created empty when the session first mounts a workspace, reset by
// BeginSwitch on every workspace change, filled by Commit, dropped by
// Teardown on sign-out. Only the hydration orchestrator calls BeginSwitch and
// Commit.
type WorkspaceState struct {
	mu          sync.RWMutex
	sessionId   string
	userId      uuid.UUID
	generation  uint64
	workspaceId uuid.UUID
	loading     bool
	closed      bool
	data        Hydration
	view        ChatView
}

func NewWorkspaceState(sessionId string, userId uuid.UUID) *WorkspaceState {
	return &WorkspaceState{
		sessionId: sessionId,
		userId:    userId,
		data:      emptyHydration(),
		view:      emptyChatView(),
	}
}

func (s *WorkspaceState) SessionId() string {
	return s.sessionId
}

func (s *WorkspaceState) UserId() uuid.UUID {
	return s.userId
}

// BeginSwitch empties every collection and the chat view, marks the state as
// loading and returns the generation a matching Commit must carry.
func (s *WorkspaceState) BeginSwitch(workspaceId uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.workspaceId = workspaceId
	s.loading = true
	s.closed = false
	s.data = emptyHydration()
	s.view = emptyChatView()
	return s.generation
}

// Commit publishes a hydration and clears the loading flag. It reports false
// and writes nothing when a newer BeginSwitch (or Teardown) happened since
// the generation was issued.
func (s *WorkspaceState) Commit(generation uint64, h Hydration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || generation != s.generation {
		return false
	}

	s.data = normalize(h)
	s.loading = false
	return true
}

// IsCurrent reports whether generation is still the latest switch.
func (s *WorkspaceState) IsCurrent(generation uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed && generation == s.generation
}

// UpdateView applies fn to the chat view. Rejected while a hydration is in
// flight so nothing but the orchestrator writes during that window.
func (s *WorkspaceState) UpdateView(fn func(view *ChatView, data *Hydration) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		return ErrHydrationInFlight
	}
	return fn(&s.view, &s.data)
}

// Teardown empties the state and invalidates any in-flight hydration.
func (s *WorkspaceState) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.closed = true
	s.loading = false
	s.workspaceId = uuid.Nil
	s.data = emptyHydration()
	s.view = emptyChatView()
}

func (s *WorkspaceState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := s.view
	return Snapshot{
		SessionId:   s.sessionId,
		UserId:      s.userId,
		Generation:  s.generation,
		WorkspaceId: s.workspaceId,
		Loading:     s.loading,
		Hydration:   s.data,
		ChatView:    view,
	}
}

// normalize replaces nil collections with empty ones so readers never see a
// missing slice.
func normalize(h Hydration) Hydration {
	empty := emptyHydration()
	if h.Assistants == nil {
		h.Assistants = empty.Assistants
	}
	if h.AssistantImages == nil {
		h.AssistantImages = empty.AssistantImages
	}
	if h.Chats == nil {
		h.Chats = empty.Chats
	}
	if h.Folders == nil {
		h.Folders = empty.Folders
	}
	if h.Files == nil {
		h.Files = empty.Files
	}
	if h.Prompts == nil {
		h.Prompts = empty.Prompts
	}
	if h.Presets == nil {
		h.Presets = empty.Presets
	}
	if h.Tools == nil {
		h.Tools = empty.Tools
	}
	if h.Models == nil {
		h.Models = empty.Models
	}
	if h.Collections == nil {
		h.Collections = empty.Collections
	}
	return h
}
