// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package input implements the Input Buffer component: a re-fillable,
// put-back-capable view over a byte stream with byte-offset tracking.  It
// exists as a thin layer between the raw os.File/io.Reader (or an mmap'd
// region, left as an external collaborator per the spec's scope) and the
// UTF-8 Decoder, and exists precisely so the decoder can assume it may always
// peek MaxUTF8Len bytes ahead without itself worrying about short reads.
package input

import "io"

// MaxUTF8Len is the longest possible byte length of a single UTF-8 encoded
// code point; the decoder never needs to look further ahead than this.
const MaxUTF8Len = 4

// chunkSize is how much is read from the underlying reader at a time.
const chunkSize = 4096

// Buffer is a re-fillable buffered view over an io.Reader.  It retains every
// byte read so far; Advance only moves the current position, so PutBack can
// rewind as far back as the start of the stream.
type Buffer struct {
	r    io.Reader
	data []byte
	// pos is the index into data of the next byte to be read.
	pos int
	// base is the absolute byte offset corresponding to data[0].
	base int64
	eof  bool
}

// NewBuffer constructs an Input Buffer over a given reader.
func NewBuffer(r io.Reader) *Buffer {
	return &Buffer{r: r}
}

// NewBufferFromBytes constructs an Input Buffer directly over an in-memory
// byte slice; useful for tests and for short-circuiting already-loaded
// source files.
func NewBufferFromBytes(b []byte) *Buffer {
	return &Buffer{data: b, eof: true}
}

// ensure attempts to fill the buffer until at least n bytes are available
// past the current position, or the underlying reader is exhausted.
func (b *Buffer) ensure(n int) {
	for len(b.data)-b.pos < n && !b.eof {
		chunk := make([]byte, chunkSize)

		read, err := b.r.Read(chunk)
		if read > 0 {
			b.data = append(b.data, chunk[:read]...)
		}

		if err != nil {
			b.eof = true
		}
	}
}

// Peek returns up to n bytes starting at the current position without
// consuming them.  At true end-of-stream, fewer than n bytes may be
// returned; callers (i.e. the UTF-8 decoder) must treat a short peek as
// "the rest of the stream", never pad it themselves.
func (b *Buffer) Peek(n int) []byte {
	b.ensure(n)

	end := b.pos + n
	if end > len(b.data) {
		end = len(b.data)
	}

	return b.data[b.pos:end]
}

// PeekByte returns the byte at offset i past the current position, and
// whether one was available.
func (b *Buffer) PeekByte(i int) (byte, bool) {
	bs := b.Peek(i + 1)
	if len(bs) <= i {
		return 0, false
	}

	return bs[i], true
}

// Advance consumes n bytes from the front of the buffer.
func (b *Buffer) Advance(n int) {
	b.pos += n
}

// PutBack rewinds the current position by n bytes.  It is the caller's
// responsibility to only put back bytes which were peeked/advanced earlier
// in the same buffer's lifetime; putting back further than that panics.
func (b *Buffer) PutBack(n int) {
	if n > b.pos {
		panic("input: put-back past start of buffer")
	}

	b.pos -= n
}

// Offset returns the absolute byte offset of the current position within
// the overall stream.
func (b *Buffer) Offset() int64 {
	return b.base + int64(b.pos)
}

// AtEOF reports whether the buffer has been fully consumed and the
// underlying reader is exhausted.
func (b *Buffer) AtEOF() bool {
	b.ensure(1)

	return b.eof && b.pos >= len(b.data)
}
