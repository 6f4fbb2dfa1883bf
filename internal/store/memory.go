// internal/store/memory.go
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/KayKv10/RankForge/internal/apperr"
	"github.com/KayKv10/RankForge/internal/models"
)

// Memory is an in-memory Store with copy-on-write transactions: WithinTx
// clones the whole state, hands the clone to the callback, and swaps it in
// only on success. It backs the pipeline tests, which need real rollback
// semantics without a database.
type Memory struct {
	mu    sync.Mutex
	state *memState
}

type memState struct {
	nextID       int64
	players      map[int64]*models.Player
	games        map[int64]*models.Game
	profiles     map[int64]*models.RatingProfile
	matches      map[int64]*models.Match
	participants map[int64]*models.Participant
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{state: &memState{
		players:      map[int64]*models.Player{},
		games:        map[int64]*models.Game{},
		profiles:     map[int64]*models.RatingProfile{},
		matches:      map[int64]*models.Match{},
		participants: map[int64]*models.Participant{},
	}}
}

// WithinTx implements Store.
func (m *Memory) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	work := m.state.clone()
	if err := fn(&memTx{s: work}); err != nil {
		return err
	}
	m.state = work
	return nil
}

// FindMatch implements Store.
func (m *Memory) FindMatch(ctx context.Context, id int64) (*models.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mt, ok := m.state.matches[id]
	if !ok {
		return nil, nil
	}
	out := copyMatch(mt)
	for _, pt := range m.state.participants {
		if pt.MatchID != id {
			continue
		}
		cp := copyParticipant(pt)
		if pl, ok := m.state.players[cp.PlayerID]; ok {
			plc := *pl
			cp.Player = &plc
		}
		out.Participants = append(out.Participants, cp)
	}
	sort.Slice(out.Participants, func(i, j int) bool {
		return out.Participants[i].ID < out.Participants[j].ID
	})
	return out, nil
}

// SeedPlayer inserts a player outside any transaction, for test setup.
func (m *Memory) SeedPlayer(name string) *models.Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &models.Player{ID: m.state.id(), Name: name, CreatedAt: time.Now().UTC()}
	m.state.players[p.ID] = p
	cp := *p
	return &cp
}

// SeedGame inserts a game outside any transaction, for test setup.
func (m *Memory) SeedGame(name, strategy string) *models.Game {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := &models.Game{ID: m.state.id(), Name: name, RatingStrategy: strategy, CreatedAt: time.Now().UTC()}
	m.state.games[g.ID] = g
	cp := *g
	return &cp
}

// Counts reports committed row counts, for atomicity assertions.
func (m *Memory) Counts() (matches, participants, profiles int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.matches), len(m.state.participants), len(m.state.profiles)
}

// Profile returns a committed profile snapshot or nil.
func (m *Memory) Profile(playerID, gameID int64) *models.RatingProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.state.profiles {
		if p.PlayerID == playerID && p.GameID == gameID {
			return copyProfile(p)
		}
	}
	return nil
}

type memTx struct {
	s *memState
}

func (t *memTx) FindGame(ctx context.Context, id int64) (*models.Game, error) {
	g, ok := t.s.games[id]
	if !ok {
		return nil, nil
	}
	cp := *g
	return &cp, nil
}

func (t *memTx) FindPlayer(ctx context.Context, id int64) (*models.Player, error) {
	p, ok := t.s.players[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (t *memTx) FindPlayerByName(ctx context.Context, name string) (*models.Player, error) {
	for _, p := range t.s.players {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (t *memTx) CreatePlayer(ctx context.Context, p *models.Player) error {
	for _, existing := range t.s.players {
		if existing.Name == p.Name {
			return apperr.Conflict(fmt.Sprintf("player name %q already exists", p.Name))
		}
	}
	p.ID = t.s.id()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	cp := *p
	t.s.players[p.ID] = &cp
	return nil
}

func (t *memTx) FindProfile(ctx context.Context, playerID, gameID int64) (*models.RatingProfile, error) {
	for _, p := range t.s.profiles {
		if p.PlayerID == playerID && p.GameID == gameID {
			return copyProfile(p), nil
		}
	}
	return nil, nil
}

func (t *memTx) GetOrCreateProfile(ctx context.Context, playerID, gameID int64) (*models.RatingProfile, error) {
	if p, _ := t.FindProfile(ctx, playerID, gameID); p != nil {
		return p, nil
	}
	p := &models.RatingProfile{
		ID:       t.s.id(),
		PlayerID: playerID,
		GameID:   gameID,
		Rating:   models.DefaultRatingState(),
		Stats:    map[string]int{},
	}
	t.s.profiles[p.ID] = copyProfile(p)
	return p, nil
}

func (t *memTx) SaveProfile(ctx context.Context, p *models.RatingProfile) error {
	if _, ok := t.s.profiles[p.ID]; !ok {
		return apperr.ProfileNotFound(p.PlayerID, p.GameID)
	}
	t.s.profiles[p.ID] = copyProfile(p)
	return nil
}

func (t *memTx) InsertMatch(ctx context.Context, m *models.Match) error {
	m.ID = t.s.id()
	if m.PlayedAt.IsZero() {
		m.PlayedAt = time.Now().UTC()
	}
	t.s.matches[m.ID] = copyMatch(m)
	for _, pt := range m.Participants {
		pt.ID = t.s.id()
		pt.MatchID = m.ID
		t.s.participants[pt.ID] = copyParticipant(pt)
	}
	return nil
}

func (t *memTx) SaveParticipant(ctx context.Context, p *models.Participant) error {
	if _, ok := t.s.participants[p.ID]; !ok {
		return fmt.Errorf("participant %d does not exist", p.ID)
	}
	t.s.participants[p.ID] = copyParticipant(p)
	return nil
}

func (s *memState) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memState) clone() *memState {
	out := &memState{
		nextID:       s.nextID,
		players:      make(map[int64]*models.Player, len(s.players)),
		games:        make(map[int64]*models.Game, len(s.games)),
		profiles:     make(map[int64]*models.RatingProfile, len(s.profiles)),
		matches:      make(map[int64]*models.Match, len(s.matches)),
		participants: make(map[int64]*models.Participant, len(s.participants)),
	}
	for id, p := range s.players {
		cp := *p
		out.players[id] = &cp
	}
	for id, g := range s.games {
		cp := *g
		out.games[id] = &cp
	}
	for id, p := range s.profiles {
		out.profiles[id] = copyProfile(p)
	}
	for id, m := range s.matches {
		out.matches[id] = copyMatch(m)
	}
	for id, p := range s.participants {
		out.participants[id] = copyParticipant(p)
	}
	return out
}

func copyProfile(p *models.RatingProfile) *models.RatingProfile {
	cp := *p
	cp.Stats = make(map[string]int, len(p.Stats))
	for k, v := range p.Stats {
		cp.Stats[k] = v
	}
	return &cp
}

// copyMatch copies the match row itself; participants are tracked separately.
func copyMatch(m *models.Match) *models.Match {
	cp := *m
	cp.Participants = nil
	cp.Metadata = make(map[string]any, len(m.Metadata))
	for k, v := range m.Metadata {
		cp.Metadata[k] = v
	}
	return &cp
}

func copyParticipant(p *models.Participant) *models.Participant {
	cp := *p
	cp.Player = nil
	if p.Outcome.Result != nil {
		r := *p.Outcome.Result
		cp.Outcome.Result = &r
	}
	if p.Outcome.Rank != nil {
		r := *p.Outcome.Rank
		cp.Outcome.Rank = &r
	}
	if p.RatingBefore != nil {
		r := *p.RatingBefore
		cp.RatingBefore = &r
	}
	if p.RatingChange != nil {
		r := *p.RatingChange
		cp.RatingChange = &r
	}
	return &cp
}
