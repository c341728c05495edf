package allocator

import "unsafe"

// header is the intrusive metadata prefix of every block in the region.
// Its layout is fixed at two machine words: a payload size and a
// successor reference into whichever list (free or allocated) currently
// owns the block. List membership is never recorded in the header itself
// - it is implied entirely by which root, freeHead or allocHead, the
// block is reachable from.
type header struct {
	size uintptr // payload length in bytes
	next unsafe.Pointer
}

// headerSize is H from spec.md: the fixed on-wire header size. It is
// computed from the struct layout rather than hardcoded so the allocator
// stays correct on any platform, and happens to equal the reference
// implementation's H = 16 on every 64-bit target.
const headerSize = unsafe.Sizeof(header{})

func headerAt(p unsafe.Pointer) *header {
	return (*header)(p)
}

// payloadStart returns the address of h's payload, immediately following
// its header.
func payloadStart(h *header) unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(h)) + headerSize)
}

// headerFromPayload recovers a block's header from a payload pointer
// previously returned by Allocate/Callocate.
func headerFromPayload(ptr unsafe.Pointer) *header {
	return (*header)(unsafe.Pointer(uintptr(ptr) - headerSize))
}

// headerNext returns h's successor as a *header, or nil.
func headerNext(h *header) *header {
	return (*header)(h.next)
}

func addrOf(h *header) uintptr {
	return uintptr(unsafe.Pointer(h))
}

// adjacentEnd returns the address one past h's payload - where a
// physically contiguous successor block's header would begin.
func adjacentEnd(h *header) uintptr {
	return uintptr(payloadStart(h)) + h.size
}

func zeroPayload(h *header) {
	if h.size == 0 {
		return
	}

	b := unsafe.Slice((*byte)(payloadStart(h)), h.size)
	for i := range b {
		b[i] = 0
	}
}

func copyHeaderAndPayload(dst, src *header) {
	dstBytes := unsafe.Slice((*byte)(unsafe.Pointer(dst)), headerSize)
	srcBytes := unsafe.Slice((*byte)(unsafe.Pointer(src)), headerSize)
	copy(dstBytes, srcBytes)

	if src.size == 0 {
		return
	}

	dstPayload := unsafe.Slice((*byte)(payloadStart(dst)), src.size)
	srcPayload := unsafe.Slice((*byte)(payloadStart(src)), src.size)
	copy(dstPayload, srcPayload)
}
