package statemachine

import (
	"errors"

	"restaurant-client/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "chef", "customer", "system"
}

// validTransitions is the client's view of the backend's state machine. It
// is used to decide which actions the UI offers and to reject obviously
// invalid requests before they hit the network; the backend remains
// authoritative.
var validTransitions = []Transition{
	// Chef accepts the order into the kitchen
	{From: models.StatusPending, To: models.StatusCooking, Actor: "chef"},
	// Chef finishes cooking
	{From: models.StatusCooking, To: models.StatusReady, Actor: "chef"},
	// Customer cancels before the kitchen starts
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "customer"},
	// Chef can drop a pending or cooking order
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "chef"},
	{From: models.StatusCooking, To: models.StatusCancelled, Actor: "chef"},
	// Payment completes the order
	{From: models.StatusPending, To: models.StatusCompleted, Actor: "system"},
	{From: models.StatusCooking, To: models.StatusCompleted, Actor: "system"},
	{From: models.StatusReady, To: models.StatusCompleted, Actor: "system"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
