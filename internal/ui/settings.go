package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/hotseat/internal/storage"
)

// Settings modal dimensions
const (
	SettingsWidth  = 360
	SettingsHeight = 360
	SettingsPadX   = 24
	SettingsPadY   = 20
)

// SettingsModal edits the stored preferences.
type SettingsModal struct {
	visible bool

	// Position (centered on screen)
	x, y int

	themeRadio    *RadioGroup
	flipCheckbox  *Checkbox
	coordCheckbox *Checkbox
	soundCheckbox *Checkbox
	saveBtn       *ModalButton
	cancelBtn     *ModalButton

	onSave func(prefs *storage.UserPreferences)
}

// NewSettingsModal creates a new settings modal.
func NewSettingsModal() *SettingsModal {
	sm := &SettingsModal{
		x: (ScreenWidth - SettingsWidth) / 2,
		y: (ScreenHeight - SettingsHeight) / 2,
	}
	sm.createWidgets()
	return sm
}

func (sm *SettingsModal) createWidgets() {
	contentX := sm.x + SettingsPadX
	contentW := SettingsWidth - SettingsPadX*2

	radioY := sm.y + 80
	sm.themeRadio = NewRadioGroup(contentX, radioY, contentW, []RadioOption{
		{Label: "Dark", Value: int(storage.ThemeDark)},
		{Label: "Light", Value: int(storage.ThemeLight)},
	}, 0)

	checkY := radioY + 2*sm.themeRadio.ItemH + 44
	sm.flipCheckbox = NewCheckbox(contentX, checkY, "Black at the bottom", false)
	sm.coordCheckbox = NewCheckbox(contentX, checkY+32, "Show coordinates", true)
	sm.soundCheckbox = NewCheckbox(contentX, checkY+64, "Sound effects", true)

	btnW, btnH, spacing := 100, 38, 12
	btnY := sm.y + SettingsHeight - SettingsPadY - btnH
	sm.cancelBtn = NewModalButton(sm.x+SettingsWidth-SettingsPadX-btnW*2-spacing, btnY, btnW, btnH, "Cancel", false, sm.Hide)
	sm.saveBtn = NewModalButton(sm.x+SettingsWidth-SettingsPadX-btnW, btnY, btnW, btnH, "Save", true, sm.handleSave)
}

// Show displays the modal loaded with prefs. onSave receives a new value;
// prefs itself is not modified.
func (sm *SettingsModal) Show(prefs *storage.UserPreferences, onSave func(*storage.UserPreferences)) {
	sm.visible = true
	sm.onSave = onSave

	sm.themeRadio.Select(int(prefs.Theme))
	sm.flipCheckbox.Checked = prefs.Flipped
	sm.coordCheckbox.Checked = prefs.ShowCoordinates
	sm.soundCheckbox.Checked = prefs.SoundEnabled
}

// Hide closes the settings modal.
func (sm *SettingsModal) Hide() {
	sm.visible = false
}

// IsVisible returns true if the modal is visible.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

func (sm *SettingsModal) handleSave() {
	prefs := &storage.UserPreferences{
		Theme:           storage.Theme(sm.themeRadio.Value()),
		Flipped:         sm.flipCheckbox.Checked,
		ShowCoordinates: sm.coordCheckbox.Checked,
		SoundEnabled:    sm.soundCheckbox.Checked,
	}
	if sm.onSave != nil {
		sm.onSave(prefs)
	}
	sm.Hide()
}

// Update handles input for the settings modal. The modal consumes all input
// while visible.
func (sm *SettingsModal) Update(input *InputHandler) bool {
	if !sm.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEscape) {
		sm.Hide()
		return true
	}
	if IsKeyJustPressed(ebiten.KeyEnter) {
		sm.handleSave()
		return true
	}

	sm.themeRadio.Update(input)
	sm.flipCheckbox.Update(input)
	sm.coordCheckbox.Update(input)
	sm.soundCheckbox.Update(input)
	sm.saveBtn.Update(input)
	sm.cancelBtn.Update(input)
	return true
}

// AnyButtonHovered returns true if any control in the modal is hovered.
func (sm *SettingsModal) AnyButtonHovered() bool {
	if !sm.visible {
		return false
	}
	return sm.saveBtn.IsHovered() || sm.cancelBtn.IsHovered() ||
		sm.themeRadio.hovered >= 0 || sm.flipCheckbox.hovered ||
		sm.coordCheckbox.hovered || sm.soundCheckbox.hovered
}

// Draw renders the settings modal.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}

	drawModalFrame(screen, sm.x, sm.y, SettingsWidth, SettingsHeight, "Settings")

	contentX := sm.x + SettingsPadX
	DrawSectionHeader(screen, "Theme", contentX, sm.themeRadio.Y-24)
	DrawSectionHeader(screen, "Board and sound", contentX, sm.flipCheckbox.Y-28)

	sm.themeRadio.Draw(screen)
	sm.flipCheckbox.Draw(screen)
	sm.coordCheckbox.Draw(screen)
	sm.soundCheckbox.Draw(screen)
	sm.saveBtn.Draw(screen)
	sm.cancelBtn.Draw(screen)
}

// drawModalFrame dims the screen and draws a modal box with a header title.
func drawModalFrame(screen *ebiten.Image, x, y, w, h int, title string) {
	fillRect(screen, 0, 0, ScreenWidth, ScreenHeight, theme.Overlay)
	fillRect(screen, x, y, w, h, theme.ModalBg)
	strokeRect(screen, x, y, w, h, 2, theme.ModalBorder)
	fillRect(screen, x, y, w, 44, theme.ModalHeader)
	drawTextCentered(screen, title, GetBoldFace(), x+w/2, y+22, theme.TextPrimary)
}
