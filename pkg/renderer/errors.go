package renderer

import "errors"

var (
	ErrNilWorld   = errors.New("renderer: no world to render")
	ErrNilSampler = errors.New("renderer: no sampler attached")
	ErrNilSink    = errors.New("renderer: no pixel sink attached")
)
