package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Hand keeps cards in the order they were received; positions shown to the
// player are 1-based indices into that order.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.HandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Card(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, fmt.Errorf("%w: hand index %d out of range [0,%d)", consts.ErrorsInvariantViolation, index, len(h.cards))
	}
	return h.cards[index], nil
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableIndices(top card.Card, currentColor color.Color) []int {
	var playable []int
	for index, candidate := range h.cards {
		if Playable(candidate, top, currentColor) {
			playable = append(playable, index)
		}
	}
	return playable
}

// Remove takes the card at index out of the hand, keeping the order of the rest.
func (h *Hand) Remove(index int) (card.Card, error) {
	removed, err := h.Card(index)
	if err != nil {
		return card.Card{}, err
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}
