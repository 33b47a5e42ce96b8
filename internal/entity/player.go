package entity

// Player is one of the two fixed participants. A player is bound to its mark for the whole process lifetime.
type Player struct {
	Name string
	Mark Mark
}

// NewPlayers - builds the two players of a game, X moves first.
func NewPlayers() (Player, Player) {
	return Player{Name: "Player X", Mark: MarkX}, Player{Name: "Player O", Mark: MarkO}
}

func (that Player) Is(other Player) bool {
	return that.Mark == other.Mark
}

func (that Player) Symbol() string {
	return that.Mark.String()
}
