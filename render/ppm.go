package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// EncodePPM writes the canvas as a plain (P3) PPM image: a header with the format tag,
// dimensions and max channel value, then one "r g b" line per pixel
func EncodePPM(w io.Writer, c *Canvas) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.PixelWidth(), c.PixelHeight())

	pix := c.Pixels()
	line := make([]byte, 0, 12)
	for i := 0; i < len(pix); i += 3 {
		line = strconv.AppendUint(line[:0], uint64(pix[i]), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(pix[i+1]), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(pix[i+2]), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return errors.Wrap(err, "[EncodePPM] failed to write pixel data")
		}
	}
	return errors.Wrap(bw.Flush(), "[EncodePPM] failed to flush")
}

// FrameName returns the file name used for a generation's image
func FrameName(generation int) string {
	return fmt.Sprintf("gen_%d.ppm", generation)
}

// WritePPM encodes the canvas to dir/name, creating dir if needed
func WritePPM(dir, name string, c *Canvas) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return errors.Wrapf(err, "[WritePPM] failed to create directory: %+v", dir)
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[WritePPM] failed to create file: %+v", path)
	}

	if err = EncodePPM(file, c); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "[WritePPM] file: %+v", path)
	}
	return errors.Wrapf(file.Close(), "[WritePPM] failed to close file: %+v", path)
}
