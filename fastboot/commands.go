package fastboot

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

const unlockAbilityPrefix = "get_unlock_ability: "

// run sends a literal command and succeeds iff the device answers OKAY.
func (d *Device) run(cmd string) error {
	unlock, err := d.lock()
	if err != nil {
		return err
	}
	defer unlock()

	frames, err := d.send(cmd)
	if err != nil {
		return err
	}
	return expectOkay(cmd, frames)
}

// uploadAndRun uploads a payload and issues cmd on it while holding the session.
func (d *Device) uploadAndRun(cmd string, src io.Reader, length int64) error {
	unlock, err := d.lock()
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := d.upload(src, length); err != nil {
		return err
	}
	frames, err := d.send(cmd)
	if err != nil {
		return err
	}
	return expectOkay(cmd, frames)
}

// Boot uploads an image into device RAM and boots it.
func (d *Device) Boot(src io.Reader, length int64) error {
	return d.uploadAndRun("boot", src, length)
}

// Flash uploads an image and writes it to partition.
func (d *Device) Flash(partition string, src io.Reader, length int64) error {
	return d.uploadAndRun("flash:"+partition, src, length)
}

func (d *Device) Erase(partition string) error {
	return d.run("erase:" + partition)
}

// GetVariable returns the text of every frame of the getvar response,
// INFO lines included. The lines are returned together with a
// *CommandError when the device answers FAIL.
func (d *Device) GetVariable(name string) ([]string, error) {
	unlock, err := d.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	return d.getVariable(name)
}

func (d *Device) getVariable(name string) ([]string, error) {
	cmd := "getvar:" + name
	frames, err := d.send(cmd)
	if err != nil {
		return nil, err
	}
	return frameTexts(frames), expectOkay(cmd, frames)
}

// GetVariableString joins the lines of GetVariable with newlines.
func (d *Device) GetVariableString(name string) (string, error) {
	lines, err := d.GetVariable(name)
	return strings.Join(lines, "\n"), err
}

// GetAllVariables reads "getvar:all" and parses every name:value line.
func (d *Device) GetAllVariables() ([]Variable, error) {
	lines, err := d.GetVariable("all")
	if err != nil {
		return nil, err
	}
	return ParseVariables(lines), nil
}

// Continue resumes the regular boot sequence.
func (d *Device) Continue() error {
	return d.run("continue")
}

func (d *Device) Reboot() error {
	return d.run("reboot")
}

// RebootInto reboots into recovery, fastboot or the bootloader.
func (d *Device) RebootInto(mode RebootMode) error {
	if _, err := ParseRebootMode(string(mode)); err != nil {
		return err
	}
	return d.run("reboot-" + string(mode))
}

func (d *Device) PowerDown() error {
	return d.run("powerdown")
}

func (d *Device) SetActive(slot Slot) error {
	return d.run("set_active:" + string(slot))
}

// SetActiveOther switches the active slot away from the current one and
// returns the slot made active. Nothing is sent if current-slot can not
// be read or names neither a nor b.
func (d *Device) SetActiveOther() (Slot, error) {
	unlock, err := d.lock()
	if err != nil {
		return "", err
	}
	defer unlock()

	lines, err := d.getVariable("current-slot")
	if err != nil {
		return "", fmt.Errorf("reading current slot: %w", err)
	}
	current := Slot(strings.Join(lines, "\n"))
	other, err := current.Other()
	if err != nil {
		return "", err
	}

	d.log.WithFields(log.Fields{"current": current, "target": other}).Info("switching active slot")
	cmd := "set_active:" + string(other)
	frames, err := d.send(cmd)
	if err != nil {
		return "", err
	}
	if err := expectOkay(cmd, frames); err != nil {
		return "", err
	}
	return other, nil
}

// FlashingGetUnlockAbility reports whether the bootloader may be unlocked.
// The answer is read from the first response line, which must start with
// "get_unlock_ability: ".
func (d *Device) FlashingGetUnlockAbility() (bool, error) {
	unlock, err := d.lock()
	if err != nil {
		return false, err
	}
	defer unlock()

	cmd := "flashing get_unlock_ability"
	frames, err := d.send(cmd)
	if err != nil {
		return false, err
	}
	if last := terminal(frames); last.Status == StatusFail {
		return false, &CommandError{Command: cmd, Text: last.Text}
	}

	answer := frames[0].Text
	if !strings.HasPrefix(answer, unlockAbilityPrefix) {
		return false, fmt.Errorf("%w: '%s' answered %q", ErrUnparseableResponse, cmd, answer)
	}
	if err := expectOkay(cmd, frames); err != nil {
		return false, err
	}
	return strings.HasSuffix(answer, "1"), nil
}

func (d *Device) FlashingLock() error {
	return d.run("flashing lock")
}

func (d *Device) FlashingUnlock() error {
	return d.run("flashing unlock")
}

// OEM passes a vendor command through and returns every response line
// joined into one block. The text is returned on failure as well.
func (d *Device) OEM(command string) (string, error) {
	unlock, err := d.lock()
	if err != nil {
		return "", err
	}
	defer unlock()

	cmd := "oem " + command
	frames, err := d.send(cmd)
	if err != nil {
		return "", err
	}
	return joinOEMOutput(frames), expectOkay(cmd, frames)
}
