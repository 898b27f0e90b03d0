package vision

import (
	"fmt"
	"strconv"

	"github.com/arloliu/go-vision/internal/ascii"
)

// Command tags. A success reply echoes the tag as its first field.
const (
	tagReadMode       = "RM"  // read run/setup mode
	tagSetRunMode     = "R0"  // switch to run mode
	tagReadProgram    = "PR"  // read current program selection
	tagChangeProgram  = "PW"  // change program selection
	tagReadExecCond   = "EXR" // read execution-condition number
	tagWriteExecCond  = "EXW" // write execution-condition number
	tagReset          = "RS"  // reset judgement state
	tagTrigger        = "TA"  // trigger capture and read all results
	tagRegisterRefImg = "BS"  // register reference image
)

// programNumberDigits is the fixed width of the program and reference image
// number arguments on the wire.
const programNumberDigits = 3

// ReadRunSetupMode queries whether the controller is in run mode.
//
// It returns true for run mode and false for setup mode.
func (c *Client) ReadRunSetupMode() (bool, error) {
	var isRunMode bool

	err := c.exchange(tagReadMode, func(tokens []string) error {
		if len(tokens) != 1 {
			return fmt.Errorf("%w: %s reply has %d values, want 1", ErrMalformedReply, tagReadMode, len(tokens))
		}

		v, err := ascii.ParseBool(tokens[0])
		if err != nil {
			return fmt.Errorf("%w: %s reply: %v", ErrMalformedReply, tagReadMode, err)
		}
		isRunMode = v

		return nil
	})

	return isRunMode, err
}

// SetRunMode switches the controller to run mode.
func (c *Client) SetRunMode() error {
	return c.exchange(tagSetRunMode, nil)
}

// ReadProgram reads the currently selected program.
//
// It returns the SD card slot holding the program and the program number.
func (c *Client) ReadProgram() (sdcard int, program int, err error) {
	err = c.exchange(tagReadProgram, func(tokens []string) error {
		if len(tokens) != 2 {
			return fmt.Errorf("%w: %s reply has %d values, want 2", ErrMalformedReply, tagReadProgram, len(tokens))
		}

		if sdcard, err = ascii.ParseInt(tokens[0]); err != nil {
			return fmt.Errorf("%w: %s reply: %v", ErrMalformedReply, tagReadProgram, err)
		}
		if program, err = ascii.ParseInt(tokens[1]); err != nil {
			return fmt.Errorf("%w: %s reply: %v", ErrMalformedReply, tagReadProgram, err)
		}

		return nil
	})

	return sdcard, program, err
}

// ChangeProgram selects the program with the given number on the given SD
// card slot. The controller accepts this command in setup mode only; in run
// mode it replies with StatusCommandDisabled.
//
// The program number is sent zero-padded to three digits, e.g.
// ChangeProgram(1, 7) sends "PW,1,007".
func (c *Client) ChangeProgram(sdcard int, program int) error {
	return c.exchange(tagChangeProgram, nil,
		strconv.Itoa(sdcard),
		ascii.FormatInt(program, programNumberDigits),
	)
}

// ReadExecCondition reads the active execution-condition number, the
// controller-side selector of a pre-configured trigger condition set.
func (c *Client) ReadExecCondition() (int, error) {
	var condition int

	err := c.exchange(tagReadExecCond, func(tokens []string) error {
		if len(tokens) != 1 {
			return fmt.Errorf("%w: %s reply has %d values, want 1", ErrMalformedReply, tagReadExecCond, len(tokens))
		}

		v, err := ascii.ParseInt(tokens[0])
		if err != nil {
			return fmt.Errorf("%w: %s reply: %v", ErrMalformedReply, tagReadExecCond, err)
		}
		condition = v

		return nil
	})

	return condition, err
}

// WriteExecCondition selects the execution-condition number.
func (c *Client) WriteExecCondition(condition int) error {
	return c.exchange(tagWriteExecCond, nil, strconv.Itoa(condition))
}

// Reset clears the controller's judgement and statistics state.
func (c *Client) Reset() error {
	return c.exchange(tagReset, nil)
}

// Trigger issues a capture trigger and reads the measurement results.
//
// This is the one two-phase exchange of the protocol: the controller first
// echoes the trigger tag to acknowledge that capture started, then sends a
// second frame of comma-separated floating-point measurements once the
// inspection completes. Both reads happen under the same read timeout and
// the same exchange lock.
//
// If the acknowledgement arrives but the data frame does not, the returned
// error maps to StatusTimeout and no values are returned.
func (c *Client) Trigger() ([]float64, error) {
	c.exchangeMutex.Lock()
	defer c.exchangeMutex.Unlock()

	if err := c.exchangeLocked(tagTrigger, func(tokens []string) error {
		// The acknowledgement frame carries no payload.
		return nil
	}); err != nil {
		return nil, err
	}

	data, err := c.readFrame()
	if err != nil {
		c.observeRecvError(tagTrigger, err)

		return nil, err
	}

	tokens := tokenize(data)
	if len(tokens) == 0 {
		c.metrics.incReplyErrCount()

		return nil, fmt.Errorf("%w: empty %s data frame", ErrMalformedReply, tagTrigger)
	}

	values, err := ascii.AppendFloats(make([]float64, 0, len(tokens)), tokens)
	if err != nil {
		c.metrics.incReplyErrCount()

		return nil, fmt.Errorf("%w: %s data frame: %v", ErrMalformedReply, tagTrigger, err)
	}

	c.metrics.incReplyRecvCount()

	return values, nil
}

// RegisterReferenceImage stores the current image of the given camera as the
// reference image with the given number.
//
// The reference image number is sent zero-padded to three digits, matching
// the program number format.
func (c *Client) RegisterReferenceImage(camera int, image int) error {
	return c.exchange(tagRegisterRefImg, nil,
		strconv.Itoa(camera),
		ascii.FormatInt(image, programNumberDigits),
	)
}
