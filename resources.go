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
	"os"
	"path/filepath"
	"runtime"

	mmap "github.com/edsrzf/mmap-go"
)

// lengthClass partitions ngram lengths into the two binary lookup
// structures: {1,2,3} served by UniBiTrigramLookup, {4,5} served by
// QuadriFivegramLookup.
type lengthClass int

const (
	lengthClassUniBiTrigram lengthClass = iota
	lengthClassQuadriFivegram
)

func (c lengthClass) fileSuffix() string {
	if c == lengthClassUniBiTrigram {
		return "trigrams.bin"
	}
	return "quadrifivegrams.bin"
}

// ModelResource is the byte-stream interface the loader consumes model
// blobs through: a named, sized, randomly-readable byte range, closeable
// once the loader is done with it. Implementations may back this with a
// plain file read or with a memory-mapped region shared across processes.
type ModelResource interface {
	Name() string
	Size() (int64, error)
	ReadAll() ([]byte, error)
	Close()
}

// ResourceNamespace locates the blob for a given (language, length-class)
// pair. The default implementation resolves it to a file under a root
// directory bundled with the library; callers embedding models a different
// way (packed into the binary, fetched remotely once and cached to disk,
// etc.) can supply their own.
type ResourceNamespace interface {
	Open(lang Language, class lengthClass) (ModelResource, bool, error)
}

// mmapedResource memory-maps a file read-only: the mapping is rounded up
// to a page boundary so the OS can share the backing pages across
// processes instead of copying into per-process heap memory.
type mmapedResource struct {
	name string
	size int64
	data mmap.MMap
}

func (r *mmapedResource) Name() string             { return r.name }
func (r *mmapedResource) Size() (int64, error)     { return r.size, nil }
func (r *mmapedResource) ReadAll() ([]byte, error) { return r.data[:r.size], nil }

func (r *mmapedResource) Close() {
	if err := r.data.Unmap(); err != nil {
		log.Printf("langdetect: WARN failed to unmap %s: %v", r.name, err)
	}
}

func mmapPageRoundedSize(size int64) int {
	bsize := int(size)
	if runtime.GOOS != "windows" {
		pagesize := os.Getpagesize() - 1
		bsize = (bsize + pagesize) &^ pagesize
	}
	return bsize
}

// openMmapedResource memory-maps f read-only and takes ownership of it (f
// is closed before returning; the mapping keeps the pages alive
// independent of the file descriptor).
func openMmapedResource(f *os.File) (*mmapedResource, error) {
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	r := &mmapedResource{name: f.Name(), size: fi.Size()}
	r.data, err = mmap.MapRegion(f, mmapPageRoundedSize(r.size), mmap.RDONLY, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("langdetect: unable to memory map %s: %w", f.Name(), err)
	}
	return r, nil
}

// DirResourceNamespace is a ResourceNamespace backed by a directory tree of
// the shape "<root>/<iso-code>/{trigrams,quadrifivegrams}.bin", one file per
// (language, length-class). A missing file is a legitimate condition
// reported via the bool return, never an error.
type DirResourceNamespace struct {
	Root string
}

func (d DirResourceNamespace) Open(lang Language, class lengthClass) (ModelResource, bool, error) {
	path := filepath.Join(d.Root, lang.IsoCode639_1(), class.fileSuffix())
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("langdetect: opening %s: %w", path, err)
	}

	r, err := openMmapedResource(f)
	if err != nil {
		return nil, false, err
	}
	return r, true, nil
}

// memResource is an in-memory ModelResource, used by tests and by callers
// that embed model blobs directly (e.g. via go:embed) instead of reading
// them from a directory.
type memResource struct {
	name string
	data []byte
}

func (r memResource) Name() string            { return r.name }
func (r memResource) Size() (int64, error)    { return int64(len(r.data)), nil }
func (r memResource) ReadAll() ([]byte, error) { return r.data, nil }
func (r memResource) Close()                   {}

// MapResourceNamespace is a ResourceNamespace over an in-memory map, keyed
// by "<iso-code>/<suffix>". It is mainly useful in tests, where shipping a
// directory tree of real model files is unnecessary.
type MapResourceNamespace map[string][]byte

func (m MapResourceNamespace) Open(lang Language, class lengthClass) (ModelResource, bool, error) {
	key := lang.IsoCode639_1() + "/" + class.fileSuffix()
	data, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	return memResource{name: key, data: data}, true, nil
}
