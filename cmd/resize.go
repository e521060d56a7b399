package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-imsto/batchresize/batch"
	"github.com/go-imsto/batchresize/config"
	cimg "github.com/go-imsto/batchresize/image"
)

var cmdResize = &Command{
	UsageLine: "batchresize input_folder resize_width resize_height output_folder",
	Short:     "resize every image of a folder into another folder",
	Long: `
Every entry directly under input_folder is decoded, resized to exactly
resize_width x resize_height with bilinear interpolation and written to
output_folder under the same name, in the format of its extension.
output_folder must exist. The first failing entry stops the run.
`,
}

var argNames = []string{"input_folder", "resize_width", "resize_height", "output_folder"}

const (
	sequenceNotice = "Error: Input variables should be in the sequence:"
	sequenceError  = "Input variables must follow the sequence: images_folder resize_to_width resize_to_height path_new_folder"
)

func init() {
	cmdResize.Run = runResize
}

func runResize(args []string, stdout io.Writer) error {
	req, err := parseRequest(args, stdout)
	if err != nil {
		return err
	}

	c := config.Current()
	rz, err := cimg.NewResizer(c.Resizer)
	if err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}

	logger().Debugw("resize", "req", req.String(), "resizer", c.Resizer, "quality", c.Quality)
	return batch.Run(req, batch.WithResizer(rz), batch.WithQuality(c.Quality))
}

func parseRequest(args []string, stdout io.Writer) (req batch.Request, err error) {
	if len(args) == 0 || args[0] == "" {
		fmt.Fprintln(stdout, sequenceNotice)
		return req, fmt.Errorf("%w: %s", errUsage, sequenceError)
	}
	if len(args) < len(argNames) {
		return req, fmt.Errorf("%w: missing argument %s", errUsage, argNames[len(args)])
	}

	req.InputDir = args[0]
	if req.Width, err = strconv.Atoi(args[1]); err != nil {
		return req, fmt.Errorf("%w: invalid %s %q", errUsage, argNames[1], args[1])
	}
	if req.Height, err = strconv.Atoi(args[2]); err != nil {
		return req, fmt.Errorf("%w: invalid %s %q", errUsage, argNames[2], args[2])
	}
	req.OutputDir = args[3]
	return req, nil
}
