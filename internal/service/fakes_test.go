package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/repository/contract"
	"agent-chat-be/internal/repository/specification"
	"agent-chat-be/internal/repository/unitofwork"
	"agent-chat-be/pkg/artifact"
	pkgEvents "agent-chat-be/pkg/events"
	"agent-chat-be/pkg/llm"

	"github.com/google/uuid"
)

// memStore backs the fake repositories. Specifications are interpreted by
// type; unknown ones panic so a test never silently ignores a filter.
type memStore struct {
	mu       sync.Mutex
	agents   map[string]*entity.Agent
	chats    map[uuid.UUID]*entity.Chat
	messages []*entity.Message

	commits   int
	rollbacks int
}

func newMemStore() *memStore {
	return &memStore{
		agents: make(map[string]*entity.Agent),
		chats:  make(map[uuid.UUID]*entity.Chat),
	}
}

func (s *memStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUow{store: s}
}

func (s *memStore) chatMessages(chatId uuid.UUID) []*entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Message
	for _, m := range s.messages {
		if m.ChatId == chatId {
			c := *m
			out = append(out, &c)
		}
	}
	return out
}

type memUow struct {
	store  *memStore
	inTx   bool
	staged []func()
}

func (u *memUow) Begin(ctx context.Context) error {
	if u.inTx {
		return errors.New("transaction already started")
	}
	u.inTx = true
	return nil
}

func (u *memUow) Commit() error {
	if !u.inTx {
		return errors.New("no transaction to commit")
	}
	u.store.mu.Lock()
	for _, apply := range u.staged {
		apply()
	}
	u.store.commits++
	u.store.mu.Unlock()
	u.staged, u.inTx = nil, false
	return nil
}

func (u *memUow) Rollback() error {
	if !u.inTx {
		return errors.New("no transaction to rollback")
	}
	u.store.mu.Lock()
	u.store.rollbacks++
	u.store.mu.Unlock()
	u.staged, u.inTx = nil, false
	return nil
}

// write runs immediately outside a transaction and at commit inside one.
func (u *memUow) write(apply func()) error {
	if !u.inTx {
		u.store.mu.Lock()
		apply()
		u.store.mu.Unlock()
		return nil
	}
	u.staged = append(u.staged, apply)
	return nil
}

func (u *memUow) AgentRepository() contract.AgentRepository     { return &memAgentRepo{u} }
func (u *memUow) ChatRepository() contract.ChatRepository       { return &memChatRepo{u} }
func (u *memUow) MessageRepository() contract.MessageRepository { return &memMessageRepo{u} }

// --- agents ---

type memAgentRepo struct{ u *memUow }

func agentMatches(a *entity.Agent, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if a.Id != sp.ID {
				return false
			}
		case specification.ActiveAgents:
			if !a.Active {
				return false
			}
		case specification.ExcludeComingSoon:
			if strings.HasPrefix(a.Category, entity.ComingSoonCategoryPrefix) {
				return false
			}
		case specification.ListedAgents:
			comingSoon := strings.HasPrefix(a.Category, entity.ComingSoonCategoryPrefix)
			if sp.IncludeComingSoon {
				if !a.Active && !comingSoon {
					return false
				}
			} else if !a.Active || comingSoon {
				return false
			}
		case specification.OrderBy:
		default:
			panic("unsupported agent spec")
		}
	}
	return true
}

func (r *memAgentRepo) Create(ctx context.Context, agent *entity.Agent) error {
	a := *agent
	return r.u.write(func() { r.u.store.agents[a.Id] = &a })
}

func (r *memAgentRepo) Update(ctx context.Context, agent *entity.Agent) error {
	a := *agent
	return r.u.write(func() { r.u.store.agents[a.Id] = &a })
}

func (r *memAgentRepo) Delete(ctx context.Context, id string) error {
	return r.u.write(func() { delete(r.u.store.agents, id) })
}

func (r *memAgentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agent, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *memAgentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	var out []*entity.Agent
	for _, a := range r.u.store.agents {
		if agentMatches(a, specs) {
			c := *a
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memAgentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- chats ---

type memChatRepo struct{ u *memUow }

func chatMatches(c *entity.Chat, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if id, ok := sp.ID.(uuid.UUID); !ok || c.Id != id {
				return false
			}
		case specification.OwnedBy:
			if !sp.Session.Owns(c) {
				return false
			}
		case specification.OrderBy:
		default:
			panic("unsupported chat spec")
		}
	}
	return true
}

func (r *memChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	c := *chat
	return r.u.write(func() { r.u.store.chats[c.Id] = &c })
}

func (r *memChatRepo) Update(ctx context.Context, chat *entity.Chat) error {
	c := *chat
	return r.u.write(func() { r.u.store.chats[c.Id] = &c })
}

func (r *memChatRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.u.write(func() { delete(r.u.store.chats, id) })
}

func (r *memChatRepo) Touch(ctx context.Context, id uuid.UUID) error {
	return r.u.write(func() {
		if c, ok := r.u.store.chats[id]; ok {
			c.UpdatedAt = c.UpdatedAt.Add(1)
		}
	})
}

func (r *memChatRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *memChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	var out []*entity.Chat
	for _, c := range r.u.store.chats {
		if chatMatches(c, specs) {
			cc := *c
			out = append(out, &cc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *memChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- messages ---

type memMessageRepo struct{ u *memUow }

func (r *memMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	m := *message
	return r.u.write(func() { r.u.store.messages = append(r.u.store.messages, &m) })
}

func (r *memMessageRepo) Update(ctx context.Context, message *entity.Message) error {
	m := *message
	return r.u.write(func() {
		for i, existing := range r.u.store.messages {
			if existing.Id == m.Id {
				r.u.store.messages[i] = &m
			}
		}
	})
}

func (r *memMessageRepo) DeleteByChatId(ctx context.Context, chatId uuid.UUID) error {
	return r.u.write(func() {
		kept := r.u.store.messages[:0]
		for _, m := range r.u.store.messages {
			if m.ChatId != chatId {
				kept = append(kept, m)
			}
		}
		r.u.store.messages = kept
	})
}

func (r *memMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

// FindAll keeps insertion order, which is chronological in these tests.
func (r *memMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()

	latest := 0
	var out []*entity.Message
	for _, m := range r.u.store.messages {
		ok := true
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.ByID:
				if id, isUUID := sp.ID.(uuid.UUID); !isUUID || m.Id != id {
					ok = false
				}
			case specification.ByChatID:
				if m.ChatId != sp.ChatID {
					ok = false
				}
			case specification.ByRole:
				if m.Role != sp.Role {
					ok = false
				}
			case specification.Latest:
				latest = sp.N
			case specification.OrderBy:
			default:
				panic("unsupported message spec")
			}
		}
		if ok {
			c := *m
			if m.Artifact != nil {
				a := *m.Artifact
				c.Artifact = &a
			}
			out = append(out, &c)
		}
	}

	if latest > 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		if len(out) > latest {
			out = out[:latest]
		}
	}
	return out, nil
}

func (r *memMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *memMessageRepo) LastByChatIds(ctx context.Context, chatIds []uuid.UUID) (map[uuid.UUID]*entity.Message, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	wanted := make(map[uuid.UUID]struct{}, len(chatIds))
	for _, id := range chatIds {
		wanted[id] = struct{}{}
	}
	out := make(map[uuid.UUID]*entity.Message)
	for _, m := range r.u.store.messages {
		if _, ok := wanted[m.ChatId]; ok {
			c := *m
			out[m.ChatId] = &c
		}
	}
	return out, nil
}

// --- llm ---

type fakeLLM struct {
	mu          sync.Mutex
	completions []llm.CompletionResult
	completeErr error
	chatReply   string
	chatErr     error

	completeCalls [][]llm.Message
	completeOpts  []llm.Options
	chatCalls     [][]llm.Message
}

func (f *fakeLLM) Complete(ctx context.Context, history []llm.Message, options ...llm.Option) (llm.CompletionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completeCalls = append(f.completeCalls, history)
	f.completeOpts = append(f.completeOpts, llm.ApplyOptions(llm.Options{}, options...))
	if f.completeErr != nil {
		return nil, f.completeErr
	}
	if len(f.completions) == 0 {
		return nil, llm.ErrEmptyCompletion
	}
	next := f.completions[0]
	f.completions = f.completions[1:]
	return next, nil
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatCalls = append(f.chatCalls, history)
	return f.chatReply, f.chatErr
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, options...)
}

// --- bus & events ---

type recordingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return p.err
}

type recordingSink struct {
	mu     sync.Mutex
	events []pkgEvents.Event
	err    error
}

func (s *recordingSink) Publish(ctx context.Context, event pkgEvents.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.err
}

func (s *recordingSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.EventType())
	}
	return out
}

type recordingDelivery struct {
	mu   sync.Mutex
	sent map[string][]any
}

func newRecordingDelivery() *recordingDelivery {
	return &recordingDelivery{sent: make(map[string][]any)}
}

func (d *recordingDelivery) Send(ctx context.Context, sessionKey string, v any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent[sessionKey] = append(d.sent[sessionKey], v)
	return nil
}

func (d *recordingDelivery) streamEvents(sessionKey string) []artifact.StreamEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []artifact.StreamEvent
	for _, v := range d.sent[sessionKey] {
		if evt, ok := v.(artifact.StreamEvent); ok {
			out = append(out, evt)
		}
	}
	return out
}

func (d *recordingDelivery) count(sessionKey string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sent[sessionKey])
}
