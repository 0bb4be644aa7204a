// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package surface

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var fontOnce sync.Once
var parsedFont *opentype.Font

var faceMutex sync.Mutex
var faceCache = make(map[int]font.Face)

// fontFace returns a cached face for the given bitmap pixel size.
func fontFace(sizePx int) font.Face {
	fontOnce.Do(func() {
		var err error
		parsedFont, err = opentype.Parse(goregular.TTF)
		if err != nil {
			log.Fatalf("error parsing builtin font: %v", err)
		}
	})
	if sizePx < 1 {
		sizePx = 1
	}
	faceMutex.Lock()
	defer faceMutex.Unlock()
	if face, ok := faceCache[sizePx]; ok {
		return face
	}
	face, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatalf("error creating font face: %v", err)
	}
	faceCache[sizePx] = face
	return face
}
