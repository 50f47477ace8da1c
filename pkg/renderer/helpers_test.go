package renderer

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// centeredSampler removes pixel jitter by pinning 2D draws to (0.5, 0.5)
type centeredSampler struct {
	core.Sampler
}

func (centeredSampler) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }

// MockMaterial implements material.Material for testing
type MockMaterial struct {
	scatterFn func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool)
}

func (m MockMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return m.scatterFn(rayIn, hit, sampler)
}

// MockShape implements geometry.Hittable for testing
type MockShape struct {
	hitFn func(ray core.Ray, rayT core.Interval) (material.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	return m.hitFn(ray, rayT)
}

// recordingLogger captures formatted messages per level
type recordingLogger struct {
	infos   []string
	notices []string
}

func (r *recordingLogger) Notice(v ...interface{}) {
	r.notices = append(r.notices, fmt.Sprint(v...))
}

func (r *recordingLogger) Noticef(format string, v ...interface{}) {
	r.notices = append(r.notices, fmt.Sprintf(format, v...))
}

func (r *recordingLogger) Info(v ...interface{}) {
	r.infos = append(r.infos, fmt.Sprint(v...))
}

func (r *recordingLogger) Infof(format string, v ...interface{}) {
	r.infos = append(r.infos, fmt.Sprintf(format, v...))
}

func (r *recordingLogger) Debug(v ...interface{})                   {}
func (r *recordingLogger) Debugf(format string, v ...interface{})   {}
func (r *recordingLogger) Warning(v ...interface{})                 {}
func (r *recordingLogger) Warningf(format string, v ...interface{}) {}
func (r *recordingLogger) Error(v ...interface{})                   {}
func (r *recordingLogger) Errorf(format string, v ...interface{})   {}
