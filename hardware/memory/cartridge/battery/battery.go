// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package battery

import (
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/logger"
)

// Sentinal errors.
const (
	OpenError  = "battery: %v"
	FlushError = "battery: flush: %v"
	Closed     = "battery: save file %s is closed"
)

type write struct {
	offset int
	data   uint8
}

// Battery is the persistence worker for a single save file.
type Battery struct {
	path string
	file *os.File
	mem  mmap.MMap

	// queue of writes and requests for the worker. the signal channel has a
	// capacity of one and is used only to wake the worker
	crit    sync.Mutex
	queue   []write
	flushes []chan error
	closing bool
	signal  chan struct{}

	// closed when the worker has finished
	done chan struct{}
	err  error
}

// Open the save file at path, creating it if necessary. The file is resized
// to size bytes. The contents of the file are copied into ram, which should
// be the cartridge RAM of the same size.
//
// Absence of the file is not an error. The new file is zero filled.
func Open(path string, ram []uint8) (*Battery, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, curated.Errorf(OpenError, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, curated.Errorf(OpenError, err)
	}

	if info.Size() != int64(len(ram)) {
		if info.Size() == 0 {
			logger.Logf(logger.Allow, "battery", "creating %s", path)
		} else {
			logger.Logf(logger.Allow, "battery", "resizing %s from %d to %d bytes", path, info.Size(), len(ram))
		}
		if err := f.Truncate(int64(len(ram))); err != nil {
			f.Close()
			return nil, curated.Errorf(OpenError, err)
		}
	}

	mem, err := mmap.MapRegion(f, len(ram), mmap.RDWR, 0, 0)
	if err != nil {
		f.Close()
		return nil, curated.Errorf(OpenError, err)
	}

	copy(ram, mem)

	b := &Battery{
		path:   path,
		file:   f,
		mem:    mem,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	go b.run()

	return b, nil
}

// Path returns the path of the save file.
func (b *Battery) Path() string {
	return b.path
}

func (b *Battery) wake() {
	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Persist implements the mapper.Persister interface. It never blocks.
func (b *Battery) Persist(offset int, data uint8) {
	b.crit.Lock()
	if b.closing {
		b.crit.Unlock()
		return
	}
	b.queue = append(b.queue, write{offset: offset, data: data})
	b.crit.Unlock()
	b.wake()
}

// Flush waits for all queued writes to be applied to the save file and for
// the save file to be synchronised with the disk.
func (b *Battery) Flush() error {
	ch := make(chan error, 1)

	b.crit.Lock()
	if b.closing {
		b.crit.Unlock()
		return curated.Errorf(Closed, b.path)
	}
	b.flushes = append(b.flushes, ch)
	b.crit.Unlock()
	b.wake()

	return <-ch
}

// Close drains the queue, flushes and releases the save file. The worker
// goroutine ends. Calling Close() more than once is safe.
func (b *Battery) Close() error {
	b.crit.Lock()
	b.closing = true
	b.crit.Unlock()
	b.wake()

	<-b.done
	return b.err
}

func (b *Battery) run() {
	defer close(b.done)

	for range b.signal {
		b.crit.Lock()
		queue := b.queue
		flushes := b.flushes
		closing := b.closing
		b.queue = nil
		b.flushes = nil
		b.crit.Unlock()

		for _, w := range queue {
			if w.offset >= 0 && w.offset < len(b.mem) {
				b.mem[w.offset] = w.data
			}
		}

		if len(flushes) > 0 || closing {
			var err error
			if ferr := b.mem.Flush(); ferr != nil {
				err = curated.Errorf(FlushError, ferr)
				logger.Log(logger.Allow, "battery", err)
			}
			for _, ch := range flushes {
				ch <- err
			}
			if err != nil {
				b.err = err
			}
		}

		if closing {
			if err := b.mem.Unmap(); err != nil && b.err == nil {
				b.err = curated.Errorf(OpenError, err)
			}
			if err := b.file.Close(); err != nil && b.err == nil {
				b.err = curated.Errorf(OpenError, err)
			}
			return
		}
	}
}
