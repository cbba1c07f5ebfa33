package objectdetection

import (
	"context"
	"image"
	"image/draw"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// Source "pulls" frames from a FrameSource and applies the detector pipeline to them in the background,
// caching the latest outcome. Fulfills the FrameSource interface itself, serving frames overlaid with detections.
type Source struct {
	src                     FrameSource
	imageInput, imageOutput chan *Result
	updater                 chan struct{}
	cache                   *Result
	ticker                  *clock.Ticker
	mutex                   sync.RWMutex
	activeBackgroundWorker  sync.WaitGroup
}

// Result holds all useful information for the detector: contains the original image, the preprocessed image, and the final detections.
type Result struct {
	OriginalImage     image.Image
	PreprocessedImage image.Image
	Detections        []Detection
	Err               error
}

func buildAndStartPipeline(prep Preprocessor, det Detector, post Postprocessor) (chan *Result, chan *Result) {
	// define the pipeline functions
	copyImage := func(in <-chan *Result, out chan<- *Result) {
		for r := range in {
			if r.Err == nil {
				r.PreprocessedImage = CopyImage(r.OriginalImage)
			}
			out <- r
		}
		close(out)
	}
	preprocess := func(in <-chan *Result, out chan<- *Result) {
		for r := range in {
			if r.Err == nil {
				r.PreprocessedImage = prep(r.PreprocessedImage)
			}
			out <- r
		}
		close(out)
	}
	detection := func(in <-chan *Result, out chan<- *Result) {
		for r := range in {
			if r.Err == nil {
				r.Detections, r.Err = det(context.Background(), r.PreprocessedImage)
			}
			out <- r
		}
		close(out)
	}
	postprocess := func(in <-chan *Result, out chan<- *Result) {
		for r := range in {
			if r.Err == nil {
				r.Detections = post(r.Detections)
			}
			out <- r
		}
		close(out)
	}
	// create the channels and run
	images := make(chan *Result)
	copied := make(chan *Result)
	processed := make(chan *Result)
	detected := make(chan *Result)
	filtered := make(chan *Result)
	goutils.PanicCapturingGo(func() { copyImage(images, copied) })
	goutils.PanicCapturingGo(func() { preprocess(copied, processed) })
	goutils.PanicCapturingGo(func() { detection(processed, detected) })
	goutils.PanicCapturingGo(func() { postprocess(detected, filtered) })
	return images, filtered
}

// NewSource builds the pipeline from an input FrameSource, Preprocessor (optional), Detector (required)
// and Postprocessor (optional), and refreshes its cached result fps times per second.
func NewSource(src FrameSource, prep Preprocessor, det Detector, post Postprocessor, fps float64) (*Source, error) {
	return newSource(src, prep, det, post, fps, clock.New())
}

func newSource(src FrameSource, prep Preprocessor, det Detector, post Postprocessor, fps float64, c clock.Clock) (*Source, error) {
	// fill optional functions with identity operators
	if src == nil {
		return nil, errors.New("object detection source must include a frame source to pull from")
	}
	if det == nil {
		return nil, errors.New("object detector function cannot be nil")
	}
	if prep == nil {
		prep = func(img image.Image) image.Image { return img }
	}
	if post == nil {
		post = func(inp []Detection) []Detection { return inp }
	}
	if fps <= 0. {
		return nil, errors.Errorf("detection refresh rate %v must be positive", fps)
	}
	imageInputChan, imageOutputChan := buildAndStartPipeline(prep, det, post)
	// run the first frame through the pipeline synchronously so construction fails fast
	r := &Result{}
	r.OriginalImage, _, r.Err = src.Next(context.Background())
	if r.Err != nil {
		return nil, r.Err
	}
	imageInputChan <- r
	r = <-imageOutputChan
	if r.Err != nil {
		return nil, r.Err
	}
	// return the Source
	updaterChan := make(chan struct{})
	ticker := c.Ticker(time.Duration(float64(time.Second) / fps))
	s := &Source{
		src:         src,
		imageInput:  imageInputChan,
		imageOutput: imageOutputChan,
		updater:     updaterChan,
		cache:       r,
		ticker:      ticker,
	}
	s.activeBackgroundWorker.Add(1)
	goutils.PanicCapturingGo(func() {
		defer s.activeBackgroundWorker.Done()
		s.startUpdater()
	})
	return s, nil
}

// Close stops the updater, closes the pipeline channels and the underlying frame source.
func (s *Source) Close() error {
	s.ticker.Stop()
	s.updater <- struct{}{}
	close(s.updater)
	close(s.imageInput)
	s.activeBackgroundWorker.Wait()
	return s.src.Close()
}

// startUpdater is running in background and updates detections on the ticker.
func (s *Source) startUpdater() {
	for {
		select {
		case <-s.ticker.C:
			// update cache
			r := s.runPipeline()
			s.mutex.Lock() // lock the cache before writing into it
			s.cache = r
			s.mutex.Unlock()
		case <-s.updater:
			// stop the updater
			return
		}
	}
}

func (s *Source) runPipeline() *Result {
	r := &Result{}
	r.OriginalImage, _, r.Err = s.src.Next(context.Background())
	s.imageInput <- r
	r = <-s.imageOutput
	return r
}

// Next returns the original image overlaid with the found detections.
func (s *Source) Next(ctx context.Context) (image.Image, func(), error) {
	res, err := s.NextResult(ctx)
	if err != nil {
		return nil, nil, err
	}
	ovImg, err := Overlay(res.OriginalImage, res.Detections)
	if err != nil {
		return nil, nil, err
	}
	return ovImg, func() {}, nil
}

// NextResult returns all the components of the latest pipeline run, and is useful if you only want the Detections.
func (s *Source) NextResult(ctx context.Context) (*Result, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	r := s.cache
	return r, r.Err
}

// CopyImage copies an image into a fresh RGBA buffer so pipeline stages never
// share backing memory with the frame source.
func CopyImage(img image.Image) image.Image {
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, img.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
