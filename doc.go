/*
go-mot provides post-processing tools for multi-object-tracking annotations.
It parses MOT-style tracker output into a tracklet array, a dense
(tracklet x frame) table of bounding boxes, persists the array as a NumPy
.npy file, and supports the common annotation clean-up edits: splitting a
tracklet at a frame, merging two tracklets, and interpolating boxes across
gaps in a tracklet.

Rendering of arrays onto extracted video frames lives in the render
subdirectory, schematic presence views in plot, and video frame extraction
in video.

See the command line tools in the cmd subdirectory for typical usage.
*/
package mot
