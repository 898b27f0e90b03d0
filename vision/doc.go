// Package vision implements a client for the line-oriented ASCII command
// protocol spoken over TCP by compact machine-vision controllers.
//
// The protocol is a strict half-duplex request/response exchange. The client
// sends one command frame and blocks for one reply frame; there is no
// pipelining and no unsolicited traffic except the data frame that follows a
// trigger acknowledgement.
//
// # Wire Format
//
// Every frame is ASCII text terminated by a carriage return (0x0D). Fields
// within a frame are separated by commas:
//
//	Request:        <TAG>[,<arg>]*<CR>
//	Success reply:  <TAG>[,<value>]*<CR>
//	Error reply:    ER,<TAG>,<code><CR>
//
// A success reply echoes the command tag as its first field. An error reply
// starts with the fixed "ER" marker, followed by the rejected tag and a
// numeric error code. The trigger operation is the one two-phase exchange:
// after the echoed acknowledgement the controller sends a second frame of
// comma-separated floating-point measurements.
//
// # Usage
//
//	cfg, err := vision.NewConnectionConfig("192.168.0.10", 8500,
//	    vision.WithReadTimeout(3*time.Second),
//	)
//	// ... handle error ...
//
//	client, err := vision.NewClient(cfg)
//	// ... handle error ...
//
//	if err := client.Open(); err != nil {
//	    // ... handle error ...
//	}
//	defer client.Close()
//
//	if err := client.ChangeProgram(1, 7); err != nil {
//	    // ... handle error ...
//	}
//
//	values, err := client.Trigger()
//	if err != nil {
//	    switch vision.StatusOf(err) {
//	    case vision.StatusTimeout:
//	        // no result before the read timeout
//	    default:
//	        // controller error reply or transport fault
//	    }
//	}
//
// The controller rejects overlapping commands, so a Client serializes all
// operations internally; callers may share one Client across goroutines but
// each call blocks until its exchange completes or times out.
package vision
