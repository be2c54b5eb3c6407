package bridgesdk

import "github.com/statefi/bridge/pkg/jwtx"

// JWKSResponse is the key set served at /.well-known/jwks.json.
type JWKSResponse = jwtx.JWKS
