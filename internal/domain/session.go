package domain

import "time"

const (
	EventLike    = "like"
	EventDislike = "dislike"
)

// Preferences agrupa likes y dislikes en orden cronologico.
type Preferences struct {
	Likes    []SlimItem `json:"likes"`
	Dislikes []SlimItem `json:"dislikes"`
}

// HistoryEvent es un registro de auditoria de un swipe.
type HistoryEvent struct {
	Type      string    `json:"type"`
	ItemID    string    `json:"item_id"`
	Timestamp time.Time `json:"ts"`
}

// SessionProfile es el estado mutable de una sesion del totem.
type SessionProfile struct {
	SessionID   string         `json:"session_id"`
	CreatedAt   time.Time      `json:"created_at"`
	Preferences Preferences    `json:"preferences"`
	Traits      Traits         `json:"traits"`
	History     []HistoryEvent `json:"history"`
}

// NewSessionProfile crea un perfil vacio con colecciones inicializadas.
func NewSessionProfile(sessionID string, now time.Time) *SessionProfile {
	return &SessionProfile{
		SessionID: sessionID,
		CreatedAt: now,
		Preferences: Preferences{
			Likes:    []SlimItem{},
			Dislikes: []SlimItem{},
		},
		Traits:  Traits{},
		History: []HistoryEvent{},
	}
}

// RecordLike agrega el item a likes y su evento al historial.
// El llamador debe garantizar exclusion mutua sobre el perfil.
func (p *SessionProfile) RecordLike(item Item, now time.Time) {
	p.Preferences.Likes = append(p.Preferences.Likes, item.Slim())
	p.History = append(p.History, HistoryEvent{Type: EventLike, ItemID: item.ID, Timestamp: now})
}

// RecordDislike es el simetrico de RecordLike.
func (p *SessionProfile) RecordDislike(item Item, now time.Time) {
	p.Preferences.Dislikes = append(p.Preferences.Dislikes, item.Slim())
	p.History = append(p.History, HistoryEvent{Type: EventDislike, ItemID: item.ID, Timestamp: now})
}

// Clone devuelve una copia independiente del perfil.
func (p *SessionProfile) Clone() SessionProfile {
	out := SessionProfile{
		SessionID: p.SessionID,
		CreatedAt: p.CreatedAt,
		Preferences: Preferences{
			Likes:    append([]SlimItem{}, p.Preferences.Likes...),
			Dislikes: append([]SlimItem{}, p.Preferences.Dislikes...),
		},
		Traits:  p.Traits.Clone(),
		History: append([]HistoryEvent{}, p.History...),
	}
	return out
}
