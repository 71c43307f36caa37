package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck owns the draw pile and the discard pile. The last card of the draw
// pile is its top.
type Deck struct {
	cards   []card.Card
	pile    *Pile
	rng     *rand.Rand
	refills int
}

// NewDeck returns the full 108 card composition, unshuffled, with an empty discard pile.
func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{
		cards: BuildCards(),
		pile:  NewPile(),
		rng:   rng,
	}
}

// NewDeckFrom restores a table where cards is the draw pile and discard the
// discard pile, both bottom first.
func NewDeckFrom(cards []card.Card, discard []card.Card, rng *rand.Rand) *Deck {
	pile := NewPile()
	for _, discarded := range discard {
		pile.Add(discarded)
	}
	return &Deck{
		cards: append(make([]card.Card, 0, len(cards)), cards...),
		pile:  pile,
		rng:   rng,
	}
}

func BuildCards() []card.Card {
	cards := make([]card.Card, 0, 108)

	for _, cardColor := range color.Chromatics {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createWildCards()...)

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createWildCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Pile() *Pile {
	return d.pile
}

func (d *Deck) Top() (card.Card, bool) {
	return d.pile.Top()
}

// Refills counts how many times the discard pile was shuffled back into the draw pile.
func (d *Deck) Refills() int {
	return d.refills
}

// Draw moves the top card of the draw pile into hand, refilling the draw
// pile from the discard pile first when it is empty.
func (d *Deck) Draw(hand *Hand) (card.Card, error) {
	if len(d.cards) == 0 {
		d.refill()
	}
	if len(d.cards) == 0 {
		return card.Card{}, consts.ErrorsDeckExhausted
	}
	drawn := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	hand.AddCards([]card.Card{drawn})
	return drawn, nil
}

func (d *Deck) refill() {
	under := d.pile.takeUnderTop()
	if len(under) == 0 {
		return
	}
	d.cards = append(d.cards, under...)
	d.Shuffle()
	d.refills++
}

// Play moves the card at index from hand onto the discard pile. Legality is
// the caller's concern.
func (d *Deck) Play(hand *Hand, index int) (card.Card, error) {
	played, err := hand.Remove(index)
	if err != nil {
		return card.Card{}, err
	}
	d.pile.Add(played)
	return played, nil
}

// Deal gives amount cards to every hand, one card per hand per round.
func (d *Deck) Deal(hands []*Hand, amount int) error {
	for round := 0; round < amount; round++ {
		for _, hand := range hands {
			if _, err := d.Draw(hand); err != nil {
				return err
			}
		}
	}
	return nil
}

// FlipFirstCard turns up draw pile cards until a number card appears and
// starts the discard pile with it. Other cards go to the bottom of the draw pile.
func (d *Deck) FlipFirstCard() (card.Card, error) {
	for attempts := len(d.cards); attempts > 0; attempts-- {
		flipped := d.cards[len(d.cards)-1]
		d.cards = d.cards[:len(d.cards)-1]
		if flipped.Kind() == card.Number {
			d.pile.Add(flipped)
			return flipped, nil
		}
		d.cards = append([]card.Card{flipped}, d.cards...)
	}
	return card.Card{}, fmt.Errorf("%w: no number card left to start the discard pile", consts.ErrorsInvariantViolation)
}
