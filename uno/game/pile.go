package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile; its last card is the top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// takeUnderTop removes and returns every card below the top one.
func (p *Pile) takeUnderTop() []card.Card {
	pileSize := len(p.cards)
	if pileSize <= 1 {
		return nil
	}
	under := make([]card.Card, pileSize-1)
	copy(under, p.cards[:pileSize-1])
	p.cards = []card.Card{p.cards[pileSize-1]}
	return under
}
