package geometry

import (
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, hitWindow); isHit {
		t.Error("Empty list should never hit")
	}
	if list.Len() != 0 {
		t.Errorf("Expected empty list, got %d objects", list.Len())
	}
}

func TestHittableList_NearestRegardlessOfOrder(t *testing.T) {
	nearMat := material.NewLambertian(core.NewVec3(1, 0, 0))
	farMat := material.NewLambertian(core.NewVec3(0, 0, 1))
	near := NewSphere(core.NewVec3(0, 0, -3), 1, nearMat)
	far := NewSphere(core.NewVec3(0, 0, -10), 1, farMat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name  string
		order []Hittable
	}{
		{"near first", []Hittable{near, far}},
		{"far first", []Hittable{far, near}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewHittableList(tt.order...)
			hit, isHit := list.Hit(ray, hitWindow)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if hit.Material != nearMat {
				t.Errorf("Expected the nearer sphere's material")
			}
			if !hit.Point.Equals(core.NewVec3(0, 0, -2)) {
				t.Errorf("Expected hit point (0, 0, -2), got %v", hit.Point)
			}
		})
	}
}

func TestHittableList_RespectsWindow(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, -3), 1, nil),
		NewSphere(core.NewVec3(0, 0, -10), 1, nil),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// The window starts past the near sphere entirely
	hit, isHit := list.Hit(ray, core.NewInterval(5, 100))
	if !isHit {
		t.Fatal("Expected the far sphere to be hit")
	}
	if hit.T != 9 {
		t.Errorf("Expected t=9, got t=%f", hit.T)
	}
}

func TestHittableList_AddClearAndNesting(t *testing.T) {
	inner := NewHittableList()
	inner.Add(NewSphere(core.NewVec3(0, 0, -3), 1, nil))

	outer := NewHittableList()
	outer.Add(inner)
	outer.Add(NewSphere(core.NewVec3(0, 0, -10), 1, nil))
	if outer.Len() != 2 {
		t.Fatalf("Expected 2 objects, got %d", outer.Len())
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := outer.Hit(ray, hitWindow)
	if !isHit || hit.T != 2 {
		t.Errorf("Expected nested sphere hit at t=2, got hit=%t t=%f", isHit, hit.T)
	}

	outer.Clear()
	if _, isHit := outer.Hit(ray, hitWindow); isHit {
		t.Error("Cleared list should not hit")
	}
}
