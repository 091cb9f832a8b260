package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// parseResize parses "WxH".
func parseResize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid resize: %s", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid resize: %s: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid resize: %s: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return image.Point{}, fmt.Errorf("invalid resize: %s", s)
	}
	return image.Pt(width, height), nil
}

// parseCrop parses "XxYyWwHh", for example "0x50y400w300h".
func parseCrop(s string) (image.Rectangle, error) {
	var values [4]int
	rest := s
	for i, sep := range []string{"x", "y", "w", "h"} {
		field, tail, ok := strings.Cut(rest, sep)
		if !ok {
			return image.Rectangle{}, fmt.Errorf("invalid crop: %s", s)
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid crop: %s: %w", s, err)
		}
		values[i] = v
		rest = tail
	}
	if rest != "" || values[2] <= 0 || values[3] <= 0 {
		return image.Rectangle{}, fmt.Errorf("invalid crop: %s", s)
	}
	x, y := values[0], values[1]
	return image.Rect(x, y, x+values[2], y+values[3]), nil
}
