// Package text loads the overlay font and draws text with it.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (TTF, OTF or one font of
//     a TTC collection)
//   - Face: lightweight font instance at a specific pixel size
//   - UnicodeRange / OverlayRanges: the glyph ranges the overlay needs
//
// # Example usage
//
//	src, err := text.LoadOverlayFont(`C:\Windows\Fonts\msgothic.ttc`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	face, err := src.Face(text.BaseSize)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text.Draw(img, face, "ダメージ", 10, 10+face.Metrics().Ascent, color.White)
//
// Parsing and rasterization use golang.org/x/image/font/opentype. Glyph
// coverage is checked with github.com/go-text/typesetting.
package text
