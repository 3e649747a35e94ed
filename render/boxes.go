package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/seqview/go-mot"
	"gocv.io/x/gocv"
)

// boxLabel holds the label rendering details for one tracklet box
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// TrackBoxes renders the bounding box of every tracklet present in a frame
// onto img, each labeled with its track ID.  Boxes are colored by track ID
// so a tracklet keeps its color across frames.
func TrackBoxes(img *gocv.Mat, tracks []mot.TrackBox, font Font, lineThickness int) {

	// record label placements so they render as the top most layer and
	// don't get overdrawn by neighboring boxes
	boxLabels := make([]boxLabel, 0, len(tracks))

	for _, tb := range tracks {

		useClr := TrackColor(tb.ID)

		rect := tb.Box.Rect()
		gocv.Rectangle(img, rect, useClr, lineThickness)

		text := fmt.Sprintf("id %d", tb.ID)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		// anchor the label to the left edge of the box
		centerX := rect.Min.X + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)

		labelPosition := image.Pt(centerX-textSize.X/2, rect.Min.Y-font.BottomPad)

		// background box the label text gets written on
		bRect := image.Rect(centerX-textSize.X/2-font.LeftPad,
			rect.Min.Y-textSize.Y-font.TopPad-font.BottomPad,
			centerX+textSize.X/2+font.RightPad, rect.Min.Y)

		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			clr:     useClr,
			text:    text,
			textPos: labelPosition,
		})
	}

	for _, bl := range boxLabels {
		// draw box the text gets written on
		gocv.Rectangle(img, bl.rect, bl.clr, -1)

		// draw the label over the box
		gocv.PutTextWithParams(img, bl.text, bl.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
