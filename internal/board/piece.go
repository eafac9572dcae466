package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the lowercase color label used by callers ("white"/"black").
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// ParseColor converts a turn label into a Color.
func ParseColor(s string) Color {
	switch s {
	case "white", "w":
		return White
	case "black", "b":
		return Black
	default:
		return NoColor
	}
}

// PieceType represents the kind of a chess piece. Movement rules
// dispatch on this enum rather than on piece letters.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Letter returns the uppercase piece letter for the type.
func (pt PieceType) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if pt >= NoPieceType {
		return ' '
	}
	return letters[pt]
}

// Piece is a single piece identified by its FEN letter: uppercase for
// White, lowercase for Black. The zero value is an empty square.
// Color and kind are derived from the letter, never stored separately.
type Piece byte

// NoPiece marks an empty square.
const NoPiece Piece = 0

// NewPiece creates a Piece from a type and color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	letter := pt.Letter()
	if c == Black {
		letter += 'a' - 'A'
	}
	return Piece(letter)
}

// PieceFromCode converts a piece letter into a Piece.
// Unknown letters map to NoPiece.
func PieceFromCode(code byte) Piece {
	switch code {
	case 'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k':
		return Piece(code)
	default:
		return NoPiece
	}
}

// Color returns White for uppercase letters, Black for lowercase.
func (p Piece) Color() Color {
	switch {
	case p == NoPiece:
		return NoColor
	case p >= 'A' && p <= 'Z':
		return White
	default:
		return Black
	}
}

// Type returns the kind of the piece regardless of color.
func (p Piece) Type() PieceType {
	switch p {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Code returns the piece letter, or 0 for an empty square.
func (p Piece) Code() byte {
	return byte(p)
}

// String returns the piece letter, or "." for an empty square.
func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	return string(byte(p))
}
