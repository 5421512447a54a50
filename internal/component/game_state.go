// component/game_state.go
package component

type GamePhase int

const (
	Playing GamePhase = iota
	Won
	Lost
)

func (p GamePhase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// GameState хранит счёт, жизни и фазу игры
type GameState struct {
	Phase GamePhase
	Score int
	Lives int
	Wave  int // номер текущей волны, с единицы; 0 пока первая не началась
}

func (s *GameState) Over() bool {
	return s.Phase != Playing
}
