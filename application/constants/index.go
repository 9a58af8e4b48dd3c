package constants

import "time"

// response codes
// these consist of 4 digit numbers
//
// the 1st 3 represent specific scenarios
// 4th indicates if the response requires user interaction through a dialog box. 0 means it does not require. 1 means it requires.

var RECORD_NOT_FOUND uint = 4040       // the referenced record id does not resolve
var FACE_DATA_MISSING uint = 4120      // a resolved record carries no usable face image/embedding
var UNDECODABLE_IMAGE uint = 4220      // the submitted bytes are not a decodable image
var VERIFICATION_FAILED uint = 4230    // the stage completed with a negative outcome
var VERIFICATION_COMPLETED uint = 2000 // the stage completed with a positive outcome

var AVAILABLE_RECORD_KINDS = []string{"document", "liveness", "match"}

var RECORD_CACHE_TTL = 10 * time.Minute

var SUPPORT_EMAIL = "help@veriface.io"
