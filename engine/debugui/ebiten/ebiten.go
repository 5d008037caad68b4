// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// It provides the BeginFrame, EndFrame, Draw and Layout hooks a game calls
// from its ebiten.Game methods.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini persistence
// is disabled.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{EbitenBackend: backend}
}

// BeginFrame starts an ImGui frame. Call at the top of ebiten.Game.Update.
func (b *ImguiBackend) BeginFrame() {
	b.EbitenBackend.BeginFrame()
}

// EndFrame finishes the ImGui frame started by BeginFrame.
func (b *ImguiBackend) EndFrame() {
	b.EbitenBackend.EndFrame()
}

// Draw renders the ImGui draw data on top of screen.
func (b *ImguiBackend) Draw(screen *ebiten.Image) {
	b.EbitenBackend.Draw(screen)
}

// Layout forwards the outside window size to ImGui.
func (b *ImguiBackend) Layout(outsideWidth, outsideHeight int) {
	b.EbitenBackend.Layout(outsideWidth, outsideHeight)
}
