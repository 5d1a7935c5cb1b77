package gauges

import "github.com/gogpu/gg"

// Blit copies the full pixel content of src onto dst with its top-left
// corner at (x, y). The copy is opaque (no alpha blending, matching a plain
// surface-to-surface copy) and is clipped against dst, so placements that
// hang off the destination are legal and simply truncated.
func Blit(dst, src *gg.Context, x, y int) {
	// With a batch-capable GPU accelerator registered, drawn shapes may
	// still be queued; flush them into the pixel buffers before the raw
	// row copies.
	_ = src.FlushGPU()
	_ = dst.FlushGPU()
	blitPixmap(dst.ResizeTarget(), src.ResizeTarget(), x, y)
}

// blitPixmap performs the clipped row-by-row copy between raw pixel buffers.
// Both pixmaps store tightly packed RGBA, 4 bytes per pixel.
func blitPixmap(dst, src *gg.Pixmap, x, y int) {
	srcW, srcH := src.Width(), src.Height()
	dstW, dstH := dst.Width(), dst.Height()

	// Clip the source rectangle against the destination bounds.
	sx0, sy0 := 0, 0
	if x < 0 {
		sx0 = -x
	}
	if y < 0 {
		sy0 = -y
	}
	sx1, sy1 := srcW, srcH
	if x+srcW > dstW {
		sx1 = dstW - x
	}
	if y+srcH > dstH {
		sy1 = dstH - y
	}
	if sx0 >= sx1 || sy0 >= sy1 {
		return
	}

	sd := src.Data()
	dd := dst.Data()
	rowLen := (sx1 - sx0) * 4
	for sy := sy0; sy < sy1; sy++ {
		si := (sy*srcW + sx0) * 4
		di := ((y+sy)*dstW + (x + sx0)) * 4
		copy(dd[di:di+rowLen], sd[si:si+rowLen])
	}
}
