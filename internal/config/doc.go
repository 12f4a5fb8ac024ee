// Package config provides configuration parsing for the mirror command.
//
// The configuration is stored in mirror.yaml (or mirror.json) in the
// working directory, or in the file named by --config.
//
// # Configuration File Structure
//
//	namespace: __jshtml_
//	identities: sequence      # uuid | sequence
//	sequence_prefix: n
//	log:
//	  level: info             # debug | info | warn | error
//	  format: text            # text | json
//	metrics:
//	  namespace: mirror
//
// MIRROR_NAMESPACE overrides namespace.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc := demo.New(cfg.Builder())
package config
