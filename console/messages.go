package console

import "github.com/ByLCY/rectangles/grid"

// Fixed texts shown to the player.
const (
	Welcome = `+-----------------------+
| Welcome to RECTANGLES |
+-----------------------+`

	Menu = `Please pick an option:
PLACE   - place a rectangle
FIND    - find the rectangle at a coordinate
REMOVE  - remove the rectangle at a coordinate
DISPLAY - display the grid
LIST    - list every rectangle on the grid
CREATE  - create a new grid (reset)
MENU    - show this menu
EXIT    - quit`

	FirstGridCreationInstruction      = "First of all, let's create a grid."
	GridCreationInstruction           = `Please provide a length and height in the format "length,height"`
	AdditionalGridCreationInstruction = "A grid must have a width and height of no less than 5 and no greater than 25"
	ExampleGridInput                  = "Example: 10,15"

	RectangleCreationInstruction           = `Please provide a length, height and 0-indexed x and y coordinates in the format "length,height,x,y"`
	AdditionalRectangleCreationInstruction = "Rectangles must not extend beyond the edge of the grid or overlap another rectangle"
	ExampleRectangleInput                  = "Example: 3,2,1,4"

	CoordinatesInstruction  = `Please provide 0-indexed x and y coordinates in the format "x,y"`
	ExampleCoordinatesInput = "Example: 6,10"
	UnrecognizedInput       = "Unrecognized command, type MENU to see the available options"
	InvalidInput            = "Invalid input, please try again"
	Goodbye                 = "Thanks for playing RECTANGLES, goodbye!"
	CommandPrompt           = "> "
	GenericFailure          = "Something went wrong when running Rectangles"
)

// Templates filled with Format.
const (
	GridSize        = "The size of your grid is length:${grid.length} and height:${grid.height}"
	GridCreated     = "New grid created with length of ${grid.length} and height of ${grid.height}"
	RectanglePlaced = "New rectangle ${rect.id} placed at ${rect.x},${rect.y}"
	PlacementFailed = "There is already a rectangle within the desired rectangle footprint, unable to place new rectangle."
	RectangleFound  = "Found a rectangle ${rect.id} at coordinates ${at.x},${at.y}!"
	NothingFound    = "Did not find a rectangle at coordinates ${at.x},${at.y}"
	RectangleGone   = "Removed rectangle ${rect.id}"
	NothingRemoved  = "Did not find a rectangle at the given coordinates"
	RectangleCount  = "${count} rectangles found"
	RectangleEntry  = "${rect.id} at ${rect.x},${rect.y} (${rect.length}x${rect.height})"
	RenderFailed    = "Unable to display the grid: ${reason}"
	ExportFailed    = "Unable to export the grid: ${reason}"
	GridExported    = "Grid exported to ${path}"
)

// GridData exposes grid dimensions to templates as ${grid.length} and ${grid.height}.
func GridData(d grid.Dimensions) map[string]any {
	return map[string]any{"grid": map[string]any{"length": d.Length, "height": d.Height}}
}

// RectangleData exposes a rectangle to templates under ${rect.*}.
func RectangleData(r grid.Rectangle) map[string]any {
	return map[string]any{"rect": map[string]any{
		"id":     r.ID,
		"x":      r.TopLeft.X,
		"y":      r.TopLeft.Y,
		"length": r.Length,
		"height": r.Height,
	}}
}

// At adds the looked-up coordinates to data under "at" and returns it.
func At(data map[string]any, c grid.Coordinates) map[string]any {
	if data == nil {
		data = map[string]any{}
	}
	data["at"] = map[string]any{"x": c.X, "y": c.Y}
	return data
}
