// Command imgconvert resamples and converts PNG images from the
// command line.
//
// Usage:
//
//	imgconvert convert [options] <input.png> <output.png>
//	imgconvert info <input.png>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/algo"
	"github.com/deepteams/imgcore/border"
	"github.com/deepteams/imgcore/imgio"
	"github.com/deepteams/imgcore/pixel"
	"github.com/deepteams/imgcore/png"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "imgconvert: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "imgconvert: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  imgconvert convert [options] <input.png> <output.png>
  imgconvert info <input.png>

Run "imgconvert <command> -h" for command-specific options.
`)
}

// --- convert ---

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	width := fs.Int("width", 0, "target width in pixels (0 = keep source width)")
	height := fs.Int("height", 0, "target height in pixels (0 = keep source height)")
	nearest := fs.Bool("nearest", false, "use nearest-neighbor instead of bilinear resampling")
	gray := fs.Bool("gray", false, "convert to grayscale")
	bgr := fs.Bool("bgr", false, "swap R and B channels on decode")
	level := fs.Int("level", 0, "zlib compression level for the output (0 = library default)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("convert: need <input.png> <output.png>\nUsage: imgconvert convert [options] <input.png> <output.png>")
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	src, err := imgio.OpenFileSource(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer src.Close()

	img, _, err := png.DecodeAll(src, png.DecompressionOptions{
		SetBGR:           *bgr,
		ConvertRGBToGray: *gray,
	})
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}

	if *width > 0 || *height > 0 {
		newW, newH := *width, *height
		if newW == 0 {
			newW = int(img.Width())
		}
		if newH == 0 {
			newH = int(img.Height())
		}
		interp := border.Bilinear
		if *nearest {
			interp = border.NearestNeighbor
		}
		img, err = resampleDynamic(img, pixel.Length(newW), pixel.Length(newH), interp)
		if err != nil {
			return fmt.Errorf("resampling %s: %w", inPath, err)
		}
	}

	sink, err := imgio.CreateFileSink(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer sink.Close()

	if err := png.Encode(sink, img.ConstView(), png.EncoderOptions{CompressionLevel: *level}); err != nil {
		return fmt.Errorf("encoding %s: %w", outPath, err)
	}
	return nil
}

// resampleDynamic dispatches a runtime-typed resample onto the
// concrete pixel.Pixel instantiation img's Semantics() names, the same
// "look at the runtime tag, pick the generic instantiation" technique
// convert.DynamicConvert uses. 8-bit images are handled in all eight
// named formats; 16-bit images go through the typed uint16
// instantiations and only in Y, RGB and RGBA.
func resampleDynamic(img imgcore.DynamicImage, newW, newH pixel.Length, interp border.Interp) (imgcore.DynamicImage, error) {
	format := img.Semantics().PixelFormat
	sem := img.Semantics()
	buf := img.ConstView().BytePtr()
	layout := imgcore.TypedLayout{Width: img.Width(), Height: img.Height()}

	if img.BytesPerChannel() == 2 {
		switch format {
		case pixel.FormatY:
			return resampleTyped[uint16, pixel.Y[uint16]](buf, layout, sem, newW, newH, interp)
		case pixel.FormatRGB:
			return resampleTyped[uint16, pixel.RGB[uint16]](buf, layout, sem, newW, newH, interp)
		case pixel.FormatRGBA:
			return resampleTyped[uint16, pixel.RGBA[uint16]](buf, layout, sem, newW, newH, interp)
		}
		return imgcore.DynamicImage{}, fmt.Errorf("resample: unsupported 16-bit format %s", format)
	}

	switch format {
	case pixel.FormatY:
		return resampleTyped[uint8, pixel.Y[uint8]](buf, layout, sem, newW, newH, interp)
	case pixel.FormatYA:
		return resampleTyped[uint8, pixel.YA[uint8]](buf, layout, sem, newW, newH, interp)
	case pixel.FormatRGB:
		return resampleTyped[uint8, pixel.RGB[uint8]](buf, layout, sem, newW, newH, interp)
	case pixel.FormatBGR:
		return resampleTyped[uint8, pixel.BGR[uint8]](buf, layout, sem, newW, newH, interp)
	case pixel.FormatRGBA:
		return resampleTyped[uint8, pixel.RGBA[uint8]](buf, layout, sem, newW, newH, interp)
	case pixel.FormatBGRA:
		return resampleTyped[uint8, pixel.BGRA[uint8]](buf, layout, sem, newW, newH, interp)
	case pixel.FormatARGB:
		return resampleTyped[uint8, pixel.ARGB[uint8]](buf, layout, sem, newW, newH, interp)
	case pixel.FormatABGR:
		return resampleTyped[uint8, pixel.ABGR[uint8]](buf, layout, sem, newW, newH, interp)
	default:
		return imgcore.DynamicImage{}, fmt.Errorf("resample: unsupported format %s", format)
	}
}

func resampleTyped[T pixel.Numeric, P pixel.Pixel[T]](buf []byte, layout imgcore.TypedLayout, sem imgcore.Semantics, newW, newH pixel.Length, interp border.Interp) (imgcore.DynamicImage, error) {
	src := imgcore.NewConstView[T, P](buf, layout)
	out := algo.Resample[T, P](src, newW, newH, interp)
	dstLayout := imgcore.UntypedLayout{
		Width: newW, Height: newH,
		Channels: out.View().AsConst().Pixel(0, 0).Channels(), BytesPerChannel: pixel.BytesPerChannel[T](),
	}
	dst := imgcore.NewDynamicImage(dstLayout, sem)
	copyTypedIntoDynamic[T, P](dst.View(), out.ConstView())
	return dst, nil
}

func copyTypedIntoDynamic[T pixel.Numeric, P pixel.Pixel[T]](dst imgcore.DynamicView, src imgcore.ConstView[T, P]) {
	rb := int64(dst.RowBytes())
	for y := pixel.Index(0); y < pixel.Index(src.Height()); y++ {
		copy(dst.BytePtrRow(y)[:rb], src.BytePtrRow(y)[:rb])
	}
}

// --- info ---

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("info: missing input file\nUsage: imgconvert info <input.png>")
	}

	src, err := imgio.OpenFileSource(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("opening %s: %w", fs.Arg(0), err)
	}
	defer src.Close()

	d := png.NewDecoder()
	if err := d.SetSource(src); err != nil {
		return err
	}
	header, err := d.ReadHeader(false)
	if err != nil {
		return fmt.Errorf("reading header of %s: %w", fs.Arg(0), err)
	}

	fmt.Printf("%s: %dx%d, %d channel(s), %d-bit\n", fs.Arg(0), header.Width, header.Height, header.Channels, header.BitDepth)
	return nil
}
