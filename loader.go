// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langdetect

import (
	"fmt"
	"log"
	"sync"

	"github.com/dustin/go-humanize"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"
)

// ModelCache is the process-wide (or detector-scoped) model loader. It
// resolves per-(language, length-class) binary blobs through a
// ResourceNamespace, deserializes them, and publishes the result so that
// later readers never pay for a second load or a second lock.
//
// First-writer-wins publication is built on golang.org/x/sync/singleflight
// so concurrent first-callers for the same key collapse into a single
// load instead of a custom done-channel per key. Published entries live in
// a sync.Map, so reads after publication never take a lock. A failed load
// is never cached -- singleflight.Group.Do forgets the key the moment the
// call returns, success or not -- so a later caller may retry.
type ModelCache struct {
	namespace ResourceNamespace
	group     singleflight.Group

	uniBi    sync.Map // Language -> *UniBiTrigramLookup
	quadFive sync.Map // Language -> *QuadriFivegramLookup

	loadedCount atomic.Int64
}

// NewModelCache returns a cache that resolves blobs through ns. ns is
// typically a DirResourceNamespace pointing at the library's bundled model
// directory, or a MapResourceNamespace in tests.
func NewModelCache(ns ResourceNamespace) *ModelCache {
	return &ModelCache{namespace: ns}
}

// LoadedCount reports how many (language, length-class) models this cache
// has published so far. Exposed mainly for tests; metrics.go's
// metricModelsLoaded gauge tracks the same quantity for external scraping.
func (c *ModelCache) LoadedCount() int64 {
	return c.loadedCount.Load()
}

// UniBiTrigram returns the cached (or newly loaded) C5 lookup for lang,
// loading it at most once even under concurrent callers.
func (c *ModelCache) UniBiTrigram(lang Language) (*UniBiTrigramLookup, error) {
	if v, ok := c.uniBi.Load(lang); ok {
		return v.(*UniBiTrigramLookup), nil
	}

	key := fmt.Sprintf("unibi:%d", lang)
	ranLoad := false
	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		ranLoad = true
		if v, ok := c.uniBi.Load(lang); ok {
			return v, nil
		}

		l, err := c.loadUniBiTrigram(lang)
		if err != nil {
			metricModelLoadFailedTotal.Inc()
			return nil, err
		}

		c.uniBi.Store(lang, l)
		c.loadedCount.Inc()
		metricModelLoadsTotal.Inc()
		metricModelsLoaded.Inc()
		return l, nil
	})
	if shared && !ranLoad {
		metricModelLoadWaitersTotal.Inc()
	}
	if err != nil {
		return nil, err
	}
	return v.(*UniBiTrigramLookup), nil
}

// QuadriFivegram returns the cached (or newly loaded) C6 lookup for lang.
func (c *ModelCache) QuadriFivegram(lang Language) (*QuadriFivegramLookup, error) {
	if v, ok := c.quadFive.Load(lang); ok {
		return v.(*QuadriFivegramLookup), nil
	}

	key := fmt.Sprintf("quadfive:%d", lang)
	ranLoad := false
	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		ranLoad = true
		if v, ok := c.quadFive.Load(lang); ok {
			return v, nil
		}

		l, err := c.loadQuadriFivegram(lang)
		if err != nil {
			metricModelLoadFailedTotal.Inc()
			return nil, err
		}

		c.quadFive.Store(lang, l)
		c.loadedCount.Inc()
		metricModelLoadsTotal.Inc()
		metricModelsLoaded.Inc()
		return l, nil
	})
	if shared && !ranLoad {
		metricModelLoadWaitersTotal.Inc()
	}
	if err != nil {
		return nil, err
	}
	return v.(*QuadriFivegramLookup), nil
}

func (c *ModelCache) loadUniBiTrigram(lang Language) (*UniBiTrigramLookup, error) {
	res, ok, err := c.namespace.Open(lang, lengthClassUniBiTrigram)
	if err != nil {
		return nil, fmt.Errorf("langdetect: loading unibitrigram model for %s: %w", lang, err)
	}
	if !ok {
		// Missing by design: e.g. Chinese has no useful
		// unigram/bigram/trigram model. Not an error.
		return emptyUniBiTrigramLookup, nil
	}
	defer res.Close()

	data, err := res.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("langdetect: reading %s: %w", res.Name(), err)
	}

	l, err := UniBiTrigramLookupFromBinary(data)
	if err != nil {
		return nil, fmt.Errorf("langdetect: malformed unibitrigram model %s: %w", res.Name(), err)
	}

	log.Printf("langdetect: loaded %s (%s)", res.Name(), humanize.Bytes(uint64(len(data))))
	return l, nil
}

func (c *ModelCache) loadQuadriFivegram(lang Language) (*QuadriFivegramLookup, error) {
	res, ok, err := c.namespace.Open(lang, lengthClassQuadriFivegram)
	if err != nil {
		return nil, fmt.Errorf("langdetect: loading quadrifivegram model for %s: %w", lang, err)
	}
	if !ok {
		return emptyQuadriFivegramLookup, nil
	}
	defer res.Close()

	data, err := res.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("langdetect: reading %s: %w", res.Name(), err)
	}

	l, err := QuadriFivegramLookupFromBinary(data)
	if err != nil {
		return nil, fmt.Errorf("langdetect: malformed quadrifivegram model %s: %w", res.Name(), err)
	}

	log.Printf("langdetect: loaded %s (%s)", res.Name(), humanize.Bytes(uint64(len(data))))
	return l, nil
}

// Preload eagerly loads every (language, length-class) model for langs,
// used by Builder's preload-models option.
func (c *ModelCache) Preload(langs []Language) error {
	for _, lang := range langs {
		if _, err := c.UniBiTrigram(lang); err != nil {
			return err
		}
		if _, err := c.QuadriFivegram(lang); err != nil {
			return err
		}
	}
	return nil
}
