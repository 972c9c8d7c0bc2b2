package gelato

// MessageType selects how a BigMessage is presented.
type MessageType int

const (
	MessageTypeCentered MessageType = iota
	MessageTypeWasted
	MessageTypeMissionPassed
)

func (t MessageType) function() string {
	switch t {
	case MessageTypeWasted:
		return "SHOW_SHARD_WASTED_MP_MESSAGE"
	case MessageTypeMissionPassed:
		return "SHOW_MISSION_PASSED_MESSAGE"
	default:
		return "SHOW_SHARD_CENTERED_MP_MESSAGE"
	}
}

// BigMessageMovie is the movie used by BigMessage.
const BigMessageMovie = "MP_BIG_MESSAGE_FREEMODE"

// BigMessage is a full screen title and message, like the ones shown when a
// mission is passed.
type BigMessage struct {
	*Scaleform

	Title   string
	Message string
	Type    MessageType
}

// NewBigMessage loads the big message movie. The message starts hidden.
func NewBigMessage(title, message string) (*BigMessage, error) {
	bm := &BigMessage{
		Title:   title,
		Message: message,
		Type:    MessageTypeCentered,
	}

	sf, err := NewScaleform(BigMessageMovie, bm)
	if err != nil {
		return nil, err
	}
	bm.Scaleform = sf

	return bm, nil
}

// Update pushes the title and message into the movie.
func (bm *BigMessage) Update() {
	bm.CallFunction(bm.Type.function(), bm.Title, bm.Message)
}
