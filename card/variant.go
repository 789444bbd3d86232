package card

import "github.com/dasdy/gamecard/model"

// Variant is the view a card is rendered with.
type Variant int

const (
	VariantNone Variant = iota
	VariantBefore
	VariantLive
	VariantAfter
)

func (v Variant) String() string {
	switch v {
	case VariantBefore:
		return "before"
	case VariantLive:
		return "live"
	case VariantAfter:
		return "after"
	default:
		return "none"
	}
}

// SelectVariant maps a game status to the view variant. Half-time is live.
func SelectVariant(status model.GameStatus) Variant {
	switch status {
	case model.StatusBefore:
		return VariantBefore
	case model.StatusLive, model.StatusHalfTime:
		return VariantLive
	case model.StatusFinished:
		return VariantAfter
	default:
		return VariantNone
	}
}
