package listview

import (
	"context"

	"github.com/mytheresa/product-price/app/client"
)

// View runs each operation to completion before returning. The terminal UI
// drives State and Controller itself so requests stay off its event loop.
type View struct {
	ctl   *Controller
	state State
}

func NewView(ctl *Controller) *View {
	return &View{ctl: ctl, state: NewState()}
}

func (v *View) State() State { return v.state }

func (v *View) Load(ctx context.Context) Outcome {
	return v.apply(v.ctl.Load(ctx))
}

func (v *View) SetDraft(title, price string) {
	v.state = v.state.SetDraftTitle(title).SetDraftPrice(price)
}

func (v *View) Create(ctx context.Context) Outcome {
	return v.apply(v.ctl.Create(ctx, v.state.Draft))
}

func (v *View) OpenEdit(r Record) {
	v.state = v.state.OpenEdit(r)
}

func (v *View) SetEdit(title, price string) {
	v.state = v.state.SetEditTitle(title).SetEditPrice(price)
}

func (v *View) Update(ctx context.Context) Outcome {
	if v.state.Overlay != OverlayOpen {
		return Outcome{Op: OpUpdate, Skipped: true}
	}
	return v.apply(v.ctl.Update(ctx, v.state.Edit))
}

func (v *View) Delete(ctx context.Context, id client.ID) Outcome {
	return v.apply(v.ctl.Delete(ctx, id))
}

func (v *View) CancelEdit() {
	v.state = v.state.CancelEdit()
}

func (v *View) apply(o Outcome) Outcome {
	v.state = v.state.Apply(o)
	return o
}
