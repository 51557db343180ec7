// Package dpptest holds fixtures shared by this module's test files,
// mirroring the shape of the FIDO Device Onboard project's own fdotest
// helper package.
package dpptest

// ScenarioAURI is the bootstrapping URI worked example used across the URI
// codec's tests.
const ScenarioAURI = "DPP:C:81/1,115/36;I:SN=4774LH2b4044;M:5254005828e5;V:2;K:MDkwEwYHKoZIzj0CAQYIKoZIzj0DAQcDIgADURzxmttZoIRIPWGoQMV00XHWCAQIhXruVWOz0NjlkIA=;;"

// PKEXMACInitiator and PKEXMACResponder are the worked-example MAC
// addresses used by the PKEX derivation tests.
var (
	PKEXMACInitiator = [6]byte{0xac, 0x64, 0x91, 0xf4, 0x52, 0x07}
	PKEXMACResponder = [6]byte{0x6e, 0x5e, 0xce, 0x6e, 0xf3, 0xdd}
)

// PKEXIdentifier and PKEXCode are the worked-example identifier and code
// used by the PKEX derivation tests.
const (
	PKEXIdentifier = "joes_key"
	PKEXCode       = "thisisreallysecret"
)

// AuthMutualP256 is the P-256 mutual-authentication test vector: every
// point is 64 bytes of X||Y hex, every private key 32 bytes of hex, exactly
// as published for DPP Authentication.
var AuthMutualP256 = AuthVector{
	IProtoPublic: "50a532ae2a07207276418d2fa630295d45569be425aa634f02014d00a7d1f61a" +
		"e14f35a5a858bccad90d126c46594c49ef82655e78888e15a32d916ac2172491",
	IProtoPrivate: "a87de9afbb406c96e5f79a3df895ecac3ad406f95da66314c8cb3165e0c61783",
	IBootPublic: "88b37ed91938b5197097808a6244847617892046d93b9501afd48fa0f148dfde" +
		"00f73b6991287884a9c9a33f8e0691f14d44b59811e9d8242d010270b0d33ec0",
	IBootPrivate: "15b2a83c5a0a38b61f2aa8200ee4994b8afdc01c58507d10d0a38f7eedf051bb",
	INonce:       "13f4602a16daeb69712263b9c46cba31",
	IAuth:        "d34944bb4b1f05caebda762c6e4ae034c819ec2f62a57dcfade2473876e007b2",

	RProtoPublic: "5e3fb3576884887f17c3203d8a3a6c2fac722ef0e2201b61ac73bc655c709a90" +
		"2d4b030669fb9eff8b0a79fa7c1a172ac2a92c626256963f9274dc90682c81e5",
	RProtoPrivate: "f798ed2e19286f6a6efe210b1863badb99af2a14b497634dbfd2a97394fb5aa5",
	RBootPublic: "09c585a91b4df9fd25a045201885c39cc5cfae397ddaeda957dec57fa0e3503f" +
		"52bf05968198a2f92883e96a386d767579883302dbf292105c90a43694c2fd5c",
	RBootPrivate: "54ce181a98525f217216f59b245f60e9df30ac7f6b26c939418cfc3c42d1afa0",
	RNonce:       "3d0cfb011ca916d796f7029ff0b43393",
	RAuth:        "a725abe6dc66ccf3aa3d6d61a19932fcbb0799ed09ff78e5bc6d4ea5ef8e8670",

	K1: "3d832a02ed6d7fc1dc96d2eceab738cf01c0028eb256be33d5a21a720bfcf949",
	K2: "ca08bdeeef838ddf897a5f01f20bb93dc5a895cb86788ca8c00a7664899bc310",
	Ke: "b6db65526c9a0174c3bed56f7e614f3a656233c078693249ac3516425127e5d5",
	Mx: "dde2878117d69745be4f916a2dd14269d783d1d788c603bb8746beabbd1dbbbc",
	Nx: "92118478b75c21c2c59340c842b5bce560a535f60bc37a75fe390d738c58d8e8",
	Lx: "fb737234c973cc3a36e64e5170a32f12089d198c73c2fd85a53d0b282530fd02",
}

// AuthResponderOnlyP256 is the P-256 responder-only-authentication test
// vector, omitting the initiator bootstrapping key entirely.
var AuthResponderOnlyP256 = AuthVector{
	IProtoPublic: "50a532ae2a07207276418d2fa630295d45569be425aa634f02014d00a7d1f61a" +
		"e14f35a5a858bccad90d126c46594c49ef82655e78888e15a32d916ac2172491",
	INonce: "13f4602a16daeb69712263b9c46cba31",
	IAuth:  "787d1189b526448d2901e7f6c22775ce514fce52fc886c1e924f2fbb8d97b210",

	RProtoPublic: "5e3fb3576884887f17c3203d8a3a6c2fac722ef0e2201b61ac73bc655c709a90" +
		"2d4b030669fb9eff8b0a79fa7c1a172ac2a92c626256963f9274dc90682c81e5",
	RProtoPrivate: "f798ed2e19286f6a6efe210b1863badb99af2a14b497634dbfd2a97394fb5aa5",
	RBootPublic: "09c585a91b4df9fd25a045201885c39cc5cfae397ddaeda957dec57fa0e3503f" +
		"52bf05968198a2f92883e96a386d767579883302dbf292105c90a43694c2fd5c",
	RBootPrivate: "54ce181a98525f217216f59b245f60e9df30ac7f6b26c939418cfc3c42d1afa0",
	RNonce:       "3d0cfb011ca916d796f7029ff0b43393",
	RAuth:        "43509ef7137d8c2fbe66d802ae09dedd94d41b8cbfafb4954782014ff4a3f91c",

	K1: "3d832a02ed6d7fc1dc96d2eceab738cf01c0028eb256be33d5a21a720bfcf949",
	K2: "ca08bdeeef838ddf897a5f01f20bb93dc5a895cb86788ca8c00a7664899bc310",
	Ke: "c8882a8ab30c878467822534138c704ede0ab1e873fe03b601a7908463fec87a",
	Mx: "dde2878117d69745be4f916a2dd14269d783d1d788c603bb8746beabbd1dbbbc",
	Nx: "92118478b75c21c2c59340c842b5bce560a535f60bc37a75fe390d738c58d8e8",
}

// AuthVector is one worked DPP Authentication key-schedule example, all
// fields hex-encoded exactly as published: 64-byte X||Y for points, 32-byte
// big-endian for private keys and derived material, 16-byte nonces.
// IBootPublic/IBootPrivate/Lx are empty for the responder-only variant.
type AuthVector struct {
	IProtoPublic, IProtoPrivate string
	IBootPublic, IBootPrivate   string
	INonce, IAuth               string

	RProtoPublic, RProtoPrivate string
	RBootPublic, RBootPrivate   string
	RNonce, RAuth               string

	K1, K2, Ke, Mx, Nx, Lx string
}

// PKEXVector is the Appendix D PKEX test vector for NIST P-256, published
// with mac_i/mac_r = ac:64:91:f4:52:07 / 6e:5e:ce:6e:f3:dd, identifier
// "joes_key", code "thisisreallysecret".
var PKEXVector = struct {
	IBootPublic, IBootPrivate, QIx string
	RBootPublic, RBootPrivate, QRx string

	// Mx, Nx, Kx, Jx, Ax, Yx, Xx, Bx, Lx are x-only ("compliant") point
	// encodings: each is the x-coordinate of an intermediate PKEX point,
	// with y recovered deterministically by the even-root convention.
	Mx, Nx, Kx, Jx, Ax, Yx, Xx, Bx, Lx string

	Z, U, V string
}{
	IBootPublic: "0ad58864754c812685ff3a52a573c1d72c72c4ebed98f3915622d4dfc84a438d" +
		"7e81429aac49ddec75ad6521db9c74074e30b5eb2ba53693c9341b79be14e101",
	IBootPrivate: "5941b51acfc702cdc1c347264beb2920db88eb1a0bf03a211868b1632233c269",
	QIx:          "2867c4e080980dbad5099a8f821e8729679c5c714888c0bd9c7e8e4048c5fa5e",

	RBootPublic: "977b7fa39779a81429febb12e1dc5e20a7e017c4bc7437090e57c966a2b0e8a3" +
		"9d2b62733947639763f64c7b6708c1e0857becb7e24fc195248b5b06036cf792",
	RBootPrivate: "2ae8956293f49986b6d0b8169a86805d9232babb5f6813fdfe96f19d59536c60",
	QRx:          "134af1c41c8e7d974c647cc2bfca30b036966959f9044e90f673d756706e624c",

	Mx: "bcca8e23e5c05032ae6051ca6392f7c4a4b4f9fe13e8126132d070e552848176",
	Nx: "0a91e0728809bb8191ea36d0a1d5602bf36ab6708fbfd063e2511e533b534020",
	Kx: "7415e1c68611f0443cc345d136984e488c6a26d3d5482fa67e9841a03a87c78f",
	Jx: "31c1b9ab31d9c2f278b35b5c29d180dfeaf76d585ede9c0dd91cb66149db572e",
	Ax: "0ad58864754c812685ff3a52a573c1d72c72c4ebed98f3915622d4dfc84a438d",
	Yx: "a9972a94f143740df31c7a61124d01a4e949d0fdcede61369f4c6b097aeb18b5",
	Xx: "740ab9f0c173507b0081b475b275de6a3060cf434b6a65f0b0144a1dbf913310",
	Bx: "977b7fa39779a81429febb12e1dc5e20a7e017c4bc7437090e57c966a2b0e8a3",
	Lx: "bc5f3128b0b997079a23ead63cf502ef4f7526602269620377b79bce20e03d44",

	Z: "5271dee915cf7b1908747d8edb8394442411c5183ee38b79ebef399c08738e0b",
	U: "598c3d8dcccea2d43259068d542a907442f07e8cbcfb3fb49faac12eb2fee5b6",
	V: "b2833ce21ab4e42c082111a5dd232334e48019f66b2e274f521fe2f7dfa11999",
}
