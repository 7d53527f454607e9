// Package chaoscrypt encrypts text and images under keys derived from a
// chaotic double pendulum and stores the ciphertext as a grayscale PNG.
//
// The pendulum parameters (initial angles, angular velocities, masses,
// lengths, gravity, duration and sample count) are the shared secret. Both
// sides simulate the same trajectory and quantize the same samples into
// key material:
//
//   - VariantAESCBC uses a 32-byte master key with AES-256-CBC and a random
//     IV stored in front of the ciphertext.
//   - VariantRijndael feeds independently derived round keys to a custom
//     AES-like block cipher. There is no key schedule, so ten round keys
//     give nine transformation rounds.
//
// Basic usage:
//
//	engine, err := chaoscrypt.New(chaoscrypt.WithVariant(chaoscrypt.VariantRijndael))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	params, err := engine.GenerateParameters()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	keys, err := engine.DeriveKeys(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := engine.SealFile(keys, "secret.png", chaoscrypt.KindText, []byte("hello")); err != nil {
//	    log.Fatal(err)
//	}
//	payload, err := engine.OpenFile(keys, "secret.png")
//
// The custom cipher is a teaching construction. In BlockIndependent mode
// equal plaintext blocks encrypt to equal ciphertext blocks, and the default
// zero padding drops trailing zero bytes of text payloads. Use BlockChained
// and PaddingPKCS7 to avoid both; neither changes the container layout.
package chaoscrypt
