package pathdata

// Point is a cursor position. Its coordinates keep the text they were read
// from.
type Point struct {
	X Number `json:"x"`
	Y Number `json:"y"`
}

// Trace walks the point commands (M, L, H, V) of cmds with a cursor that
// starts at the origin and returns the cursor position after each of them.
// Other commands are skipped and produce no point.
func Trace(cmds []Command) []Point {
	origin := Number{Value: 0, Raw: "0"}
	cur := Point{X: origin, Y: origin}
	var pts []Point
	for _, c := range cmds {
		switch c.Letter {
		case MoveTo, LineTo:
			cur = Point{X: c.Args[0], Y: c.Args[1]}
		case HorizontalLineTo:
			cur.X = c.Args[0]
		case VerticalLineTo:
			cur.Y = c.Args[0]
		default:
			continue
		}
		pts = append(pts, cur)
	}
	return pts
}

// PathPoints returns the vertices of bare path data d.
func PathPoints(d string) []Point {
	return Trace(ParsePath(d).Commands())
}
