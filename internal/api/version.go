package api

// Version is the SDK version reported in the X-SDK-Version header.
const Version = "0.3.1"
