// Package envelope frames plaintext before it reaches a cipher.
//
// An envelope is one tag byte followed by content. The low bits of the tag
// name the payload kind; bit 0x80 marks LZMA-compressed content. Image
// payloads carry a fixed header in front of their raw pixels:
//
//	height/256, height%256, width/256, width%256   4 bytes
//	mode, zero padded                              8 bytes
//	extension, zero padded (optional)              6 bytes
//	pixels                                         height*width*channels bytes
package envelope
