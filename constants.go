package main

import "time"

const appName = "webabiq"

// defaultSplashDuration is how long the splash screen stays up by default.
const defaultSplashDuration = 3000 * time.Millisecond

// splashFrameInterval paces splash redraws at roughly 30fps.
const splashFrameInterval = 33 * time.Millisecond

const defaultAssetsDir = "assets"
