package renderer

import "github.com/silbinarywolf/toy-sdl-lessons/internal/diag"

// copyOp is the name diagnostics use for a failed copy
const copyOp = "SDL_RenderCopy"

// RenderFull stretches tex over the whole frame.
func RenderFull(ren Renderer, tex Texture) {
	if err := ren.Copy(tex, nil, nil); err != nil {
		diag.Error(copyOp, err)
	}
}

// RenderTexture draws tex at x, y preserving the texture's width and height.
func RenderTexture(ren Renderer, tex Texture, x, y int32) {
	RenderClipAt(ren, tex, x, y, nil)
}

// RenderTextureSize draws tex at x, y scaled to w by h.
func RenderTextureSize(ren Renderer, tex Texture, x, y, w, h int32) {
	RenderClip(ren, tex, Rect{X: x, Y: y, W: w, H: h}, nil)
}

// RenderClip draws the clip region of tex into dst. A nil clip draws the
// entire texture.
func RenderClip(ren Renderer, tex Texture, dst Rect, clip *Rect) {
	if err := ren.Copy(tex, clip, &dst); err != nil {
		diag.Error(copyOp, err)
	}
}

// RenderClipAt draws the clip region of tex at x, y. The destination takes
// the clip's width and height, or the texture's when clip is nil.
func RenderClipAt(ren Renderer, tex Texture, x, y int32, clip *Rect) {
	dst := Rect{X: x, Y: y}
	if clip != nil {
		dst.W, dst.H = clip.W, clip.H
	} else {
		dst.W, dst.H = tex.Size()
	}
	RenderClip(ren, tex, dst, clip)
}

// Centered returns the position that centers a w by h box in the frame.
func Centered(frameW, frameH, w, h int32) (x, y int32) {
	return frameW/2 - w/2, frameH/2 - h/2
}
