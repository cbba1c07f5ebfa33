// Package main is the detect CLI: it runs the detection pipeline over a
// single image or a directory of frames and reports what it finds.
package main

import (
	"io"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/sightkit/detect/semantic"
	"github.com/sightkit/detect/vision"
	"github.com/sightkit/detect/vision/objectdetection"
)

func main() {
	app := &cli.App{
		Name:            "detect",
		Usage:           "run object detection over images or frame directories",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "image",
				Usage:  "detect objects in a single image and write an overlay",
				Action: imageAction,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "img",
						Usage:    "path to the image to detect objects in",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "out",
						Value: "./detections.png",
						Usage: "path to write the overlaid image to",
					},
				}, detectorFlags()...),
			},
			{
				Name:   "stream",
				Usage:  "detect objects over a directory of frames, like a capture loop",
				Action: streamAction,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "directory of frames to stream through the detector",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "fps",
						Value: 10,
						Usage: "how often to refresh detections, per second",
					},
				}, detectorFlags()...),
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		golog.Global.Fatal(err)
	}
}

func detectorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:  "thresh",
			Value: 20,
			Usage: "grayscale value that sets the threshold for detection",
		},
		&cli.Float64Flag{
			Name:  "min-size",
			Value: 500,
			Usage: "minimum area of a detection",
		},
		&cli.StringSliceFlag{
			Name:  "label",
			Usage: "semantic classes to keep; everything when unset",
		},
	}
}

func newLogger(c *cli.Context) golog.Logger {
	if c.Bool("debug") {
		return golog.NewDebugLogger("detect")
	}
	return golog.NewLogger("detect")
}

func labelFilter(c *cli.Context) []semantic.Label {
	var labels []semantic.Label
	for _, s := range c.StringSlice("label") {
		labels = append(labels, semantic.LabelFromString(s))
	}
	return labels
}

func newService(c *cli.Context, logger golog.Logger) (*vision.Service, error) {
	det := objectdetection.NewSimpleDetector(c.Float64("thresh"))
	return vision.NewService(det, logger, objectdetection.NewAreaFilter(c.Float64("min-size")))
}

func imageAction(c *cli.Context) error {
	logger := newLogger(c)
	img, err := imaging.Open(c.String("img"))
	if err != nil {
		return errors.Wrap(err, "cannot open image")
	}
	svc, err := newService(c, logger)
	if err != nil {
		return err
	}
	res := svc.DetectObjects(c.Context, img, labelFilter(c)...)
	if res.IsErr() {
		return res.UnwrapErr()
	}
	dets := res.Unwrap()
	for i, d := range dets {
		logger.Infof("detection %d: %s", i, d)
	}
	logSummary(logger, dets)
	ovImg, err := objectdetection.Overlay(img, dets)
	if err != nil {
		return errors.Wrap(err, "cannot overlay detections")
	}
	if err := imaging.Save(ovImg, c.String("out")); err != nil {
		return errors.Wrap(err, "cannot write overlaid image")
	}
	logger.Infow("wrote overlay", "path", c.String("out"))
	return nil
}

func streamAction(c *cli.Context) error {
	logger := newLogger(c)
	frames, err := objectdetection.NewDirectorySource(c.String("dir"))
	if err != nil {
		return err
	}
	det := objectdetection.NewSimpleDetector(c.Float64("thresh"))
	post := objectdetection.NewAreaFilter(c.Float64("min-size"))
	src, err := objectdetection.NewSource(frames, nil, det, post, c.Float64("fps"))
	if err != nil {
		return err
	}
	labels := labelFilter(c)
	keep := objectdetection.NewLabelFilter(labels...)

	tick := time.NewTicker(time.Duration(float64(time.Second) / c.Float64("fps")))
	defer tick.Stop()

	var frameErrs error
	var lastErr string
	for {
		select {
		case <-c.Context.Done():
			return multierr.Combine(frameErrs, src.Close(), c.Context.Err())
		case <-tick.C:
		}
		res, err := src.NextResult(c.Context)
		switch {
		case errors.Is(err, io.EOF):
			return multierr.Combine(frameErrs, src.Close())
		case err != nil:
			// a bad frame should not end the stream; the cache holds the same
			// error until the next refresh, so record it once
			if err.Error() != lastErr {
				logger.Errorw("frame failed", "error", err)
				frameErrs = multierr.Append(frameErrs, err)
				lastErr = err.Error()
			}
		default:
			dets := keep(res.Detections)
			for i, d := range dets {
				logger.Infof("detection %d: %s", i, d)
			}
			logSummary(logger, dets)
		}
	}
}

func logSummary(logger golog.Logger, dets []objectdetection.Detection) {
	for label, summary := range vision.Summarize(dets) {
		logger.Infow("summary",
			"label", label,
			"count", summary.Count,
			"mean_confidence", summary.MeanConfidence,
			"stddev", summary.StdDev,
		)
	}
}

