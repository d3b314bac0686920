package engine

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a move field lies outside its domain.
// It is a construction failure, not a rule violation.
var ErrOutOfRange = errors.New("out of range input")

// Reason categorizes why a move was refused.
type Reason string

const (
	ReasonGeometry       Reason = "geometry"
	ReasonHomeBoard      Reason = "home_board"
	ReasonEmptyOrigin    Reason = "empty_origin"
	ReasonOwnership      Reason = "ownership"
	ReasonPassiveBlocked Reason = "passive_blocked"
	ReasonSameBoard      Reason = "same_board"
	ReasonBoardPairing   Reason = "board_pairing"
	ReasonPushChain      Reason = "push_chain"
	ReasonSelfPush       Reason = "self_push"
	ReasonTerminalState  Reason = "terminal_state"
)

// Leg names the part of the move a rejection refers to.
type Leg string

const (
	LegNone    Leg = ""
	LegPassive Leg = "passive"
	LegActive  Leg = "active"
)

// Sentinels for errors.Is matching against a *Rejection.
var (
	ErrGeometry       = &Rejection{Reason: ReasonGeometry}
	ErrHomeBoard      = &Rejection{Reason: ReasonHomeBoard}
	ErrEmptyOrigin    = &Rejection{Reason: ReasonEmptyOrigin}
	ErrOwnership      = &Rejection{Reason: ReasonOwnership}
	ErrPassiveBlocked = &Rejection{Reason: ReasonPassiveBlocked}
	ErrSameBoard      = &Rejection{Reason: ReasonSameBoard}
	ErrBoardPairing   = &Rejection{Reason: ReasonBoardPairing}
	ErrPushChain      = &Rejection{Reason: ReasonPushChain}
	ErrSelfPush       = &Rejection{Reason: ReasonSelfPush}
	ErrTerminalState  = &Rejection{Reason: ReasonTerminalState}
)

// Rejection is a recoverable refusal of a move. The session is never
// modified when one is produced.
type Rejection struct {
	Reason Reason `json:"reason"`
	Leg    Leg    `json:"leg,omitempty"`
	Detail string `json:"detail"`
}

func (r *Rejection) Error() string {
	if r.Detail == "" {
		return string(r.Reason)
	}
	if r.Leg == LegNone {
		return fmt.Sprintf("%s: %s", r.Reason, r.Detail)
	}
	return fmt.Sprintf("%s (%s): %s", r.Reason, r.Leg, r.Detail)
}

// Is matches any rejection with the same reason.
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	return ok && r != nil && t != nil && t.Reason == r.Reason
}

func reject(reason Reason, leg Leg, format string, args ...interface{}) *Rejection {
	return &Rejection{Reason: reason, Leg: leg, Detail: fmt.Sprintf(format, args...)}
}
