package pgntext

// Game represents a complete chess game with tags, moves, and metadata.
type Game struct {
	// Tags for this game (e.g., Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// Any comment prefixing the game, between the tags and the moves.
	PrefixComment []*Comment

	// The move list of the game.
	Moves *Move

	// Whether the moves have been checked.
	MovesChecked bool

	// Whether the moves are valid.
	MovesOK bool

	// If !MovesOK, the first ply at which an error was found (0 = no error).
	ErrorPly int

	// Line numbers of the start and end of the game in the input file.
	StartLine uint
	EndLine   uint
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{
		Tags: make(map[string]string),
	}
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	g.ensureTags()
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// ensureTags initializes the Tags map if it is nil.
func (g *Game) ensureTags() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
}

// FEN returns the FEN string if present.
func (g *Game) FEN() string {
	return g.GetTag("FEN")
}

// PlyCount returns the number of half-moves in the game.
func (g *Game) PlyCount() int {
	count := 0
	for move := g.Moves; move != nil; move = move.Next {
		count++
	}
	return count
}

// LastMove returns the last move in the game, or nil if no moves.
func (g *Game) LastMove() *Move {
	if g.Moves == nil {
		return nil
	}
	move := g.Moves
	for move.Next != nil {
		move = move.Next
	}
	return move
}

