package cli

import (
	"fmt"
	"io"
)

// nextStepsText is the guidance printed after a successful setup run. The
// URLs are inert text for the user to visit manually; nothing here is
// fetched by the CLI itself.
const nextStepsText = `
Next steps:

1. Create your NFT markers
   Visit https://carnaux.github.io/NFT-Marker-Creator/#/
   Upload 3 distinctive images (high contrast works best).
   Download the generated files and place them in markers/ as
   marker1.*, marker2.*, marker3.*.

2. Customize your experience
   Edit index.html to change text and colors.
   Add your own 3D models to the models/ folder.
   Modify the narrative to tell your story.

3. Push to GitHub
   git add .
   git commit -m "Initial AR project setup"
   git push origin main

4. Deploy on Render.com
   Go to https://render.com/ and create a new Static Site.
   Connect your GitHub repository and deploy.

5. Test your AR experience
   Open the deployed URL on a mobile device.
   Allow camera permissions and point the camera at marker1.

Tips:
   Use high-contrast images for markers.
   Markers should be at least 10cm in size when printed.
   Good lighting improves tracking.
   Test on mobile for the best experience.
`

// printNextSteps writes the post-setup guidance to w.
func printNextSteps(w io.Writer) {
	fmt.Fprint(w, nextStepsText)
}
