// internal/app/redraw.go
package app

import "rotating-f/internal/anim"

// Redraw отслеживает, нужен ли новый кадр. Экран между кадрами не очищается,
// поэтому перерисовка нужна только после запроса или смены размеров окна.
type Redraw struct {
	viewport anim.Viewport
	pending  bool
}

// NewRedraw начинает с ожидающей перерисовки: первый кадр рисуется всегда.
func NewRedraw(vp anim.Viewport) *Redraw {
	return &Redraw{viewport: vp, pending: true}
}

// Request помечает кадр устаревшим.
func (r *Redraw) Request() {
	r.pending = true
}

// Resize запоминает новый размер области и сообщает, изменился ли он.
func (r *Redraw) Resize(vp anim.Viewport) bool {
	if vp == r.viewport {
		return false
	}
	r.viewport = vp
	r.pending = true
	return true
}

// Viewport returns the last known viewport.
func (r *Redraw) Viewport() anim.Viewport {
	return r.viewport
}

// Take возвращает true, если кадр нужно перерисовать, и сбрасывает флаг.
func (r *Redraw) Take() bool {
	pending := r.pending
	r.pending = false
	return pending
}
