package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/mvail/pixpress/domain/editor"
	"github.com/mvail/pixpress/domain/geometry"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", slog.Any("error", err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ImageResponse{Success: false, Error: msg})
}

// imageResponse re-reads the working file so preview and info reflect what
// is actually on disk.
func (s *Server) imageResponse(filename string) (ImageResponse, error) {
	stored, err := s.store.Open(filename)
	if err != nil {
		return ImageResponse{}, err
	}
	preview, err := editor.PreviewDataURI(stored.Image)
	if err != nil {
		return ImageResponse{}, err
	}
	info := editor.NewInfo(stored.Image, stored.Format, stored.SizeBytes)
	return ImageResponse{Success: true, Filename: filename, Preview: preview, Info: &info}, nil
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "running", Version: Version})
}

// handleUpload accepts a multipart upload under the "image" field, stores a
// working copy plus its pristine twin, and returns the first preview.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadMB<<20)
	if err := r.ParseMultipartForm(s.maxUploadMB << 20); err != nil {
		s.writeError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !editor.AllowedFile(header.Filename) {
		s.writeError(w, http.StatusBadRequest, "file type not allowed")
		return
	}

	name, err := s.store.SaveUpload(header.Filename, file)
	if err != nil {
		s.logger.Error("save upload", slog.Any("error", err))
		s.writeError(w, http.StatusInternalServerError, "failed to save upload")
		return
	}

	resp, err := s.imageResponse(name)
	if err != nil {
		s.logger.Error("decode upload", slog.String("filename", name), slog.Any("error", err))
		s.writeError(w, http.StatusBadRequest, "file is not a decodable image")
		return
	}
	s.logger.Info("upload stored", slog.String("filename", name), slog.Int64("bytes", header.Size))
	s.writeJSON(w, http.StatusOK, resp)
}

// handleAdjust re-applies the full adjustment set to the pristine twin and
// replaces the working copy, so repeated tweaks never compound.
func (s *Server) handleAdjust(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.store.Exists(req.Filename) {
		s.writeError(w, http.StatusNotFound, "image not found")
		return
	}

	original, err := s.store.Open(OriginalName(req.Filename))
	if err != nil {
		s.logger.Error("open original", slog.String("filename", req.Filename), slog.Any("error", err))
		s.writeError(w, http.StatusInternalServerError, "failed to open image")
		return
	}

	adj := editor.Adjustments{
		Brightness: req.Brightness,
		Contrast:   req.Contrast,
		Saturation: req.Saturation,
		Sharpness:  req.Sharpness,
	}.Clamp()
	original.Image = adj.Apply(editor.Flatten(original.Image))

	if err := s.store.Save(req.Filename, original, 95); err != nil {
		s.logger.Error("save adjusted", slog.String("filename", req.Filename), slog.Any("error", err))
		s.writeError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	resp, err := s.imageResponse(req.Filename)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to read back image")
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleCrop cuts the requested rectangle out of the working copy.
func (s *Server) handleCrop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req CropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Width < 1 || req.Height < 1 {
		s.writeError(w, http.StatusBadRequest, "crop dimensions must be at least 1x1")
		return
	}
	if !s.store.Exists(req.Filename) {
		s.writeError(w, http.StatusNotFound, "image not found")
		return
	}

	stored, err := s.store.Open(req.Filename)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to open image")
		return
	}
	cropped, err := editor.Crop(stored.Image, geometry.CropRect{
		X: req.X, Y: req.Y, Width: req.Width, Height: req.Height,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	stored.Image = cropped

	if err := s.store.Save(req.Filename, stored, 95); err != nil {
		s.logger.Error("save cropped", slog.String("filename", req.Filename), slog.Any("error", err))
		s.writeError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	resp, err := s.imageResponse(req.Filename)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to read back image")
		return
	}
	s.logger.Info("image cropped",
		slog.String("filename", req.Filename),
		slog.Int("width", req.Width),
		slog.Int("height", req.Height),
	)
	s.writeJSON(w, http.StatusOK, resp)
}

// handleCompress re-encodes the working copy, stepping JPEG quality down
// until the output fits the size target. A format change moves the session
// to the new extension.
func (s *Server) handleCompress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req CompressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.store.Exists(req.Filename) {
		s.writeError(w, http.StatusNotFound, "image not found")
		return
	}

	quality := req.Quality
	if quality == 0 {
		quality = 85
	}
	format := editor.FormatJPEG
	if req.OutputFormat != "" {
		var err error
		format, err = editor.ParseFormat(req.OutputFormat)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if !format.CanEncode() {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("cannot encode to %s", format))
		return
	}

	stored, err := s.store.Open(req.Filename)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to open image")
		return
	}

	result, err := editor.Compress(stored.Image, format, quality, req.MaxSizeKB)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// A format change renames the working copy and its pristine twin; the
	// stale file under the old extension is removed.
	newName := strings.TrimSuffix(req.Filename, path.Ext(req.Filename)) + "." + result.Format.Ext()
	if err := s.store.WriteBytes(newName, result.Data); err != nil {
		s.logger.Error("save compressed", slog.String("filename", newName), slog.Any("error", err))
		s.writeError(w, http.StatusInternalServerError, "failed to save image")
		return
	}
	if newName != req.Filename {
		if full, err := s.store.Resolve(req.Filename); err == nil {
			_ = os.Remove(full)
		}
		if s.store.Exists(OriginalName(req.Filename)) {
			if err := s.store.Rename(OriginalName(req.Filename), OriginalName(newName)); err != nil {
				s.logger.Error("rename original", slog.String("filename", req.Filename), slog.Any("error", err))
			}
		}
	}

	preview, err := editor.PreviewDataURI(stored.Image)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to build preview")
		return
	}
	info := editor.NewInfo(stored.Image, result.Format, int64(len(result.Data)))
	s.logger.Info("image compressed",
		slog.String("filename", newName),
		slog.Int("quality", result.QualityUsed),
		slog.Int("bytes", len(result.Data)),
	)
	s.writeJSON(w, http.StatusOK, CompressResponse{
		Success:     true,
		Preview:     preview,
		Info:        &info,
		QualityUsed: result.QualityUsed,
		NewFilename: newName,
		Format:      string(result.Format),
	})
}

// handleDownload serves a stored file as an attachment.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	filename := strings.TrimPrefix(r.URL.Path, "/download/")
	full, err := s.store.Resolve(filename)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}
	if !s.store.Exists(filename) {
		s.writeError(w, http.StatusNotFound, "file not found")
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "edited_"+filename))
	http.ServeFile(w, r, full)
}

// handleReset deletes the working copy and its pristine twin. Deleting an
// already-absent file still succeeds.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	filename := strings.TrimPrefix(r.URL.Path, "/reset/")
	if _, err := s.store.Resolve(filename); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}
	if err := s.store.Remove(filename); err != nil {
		s.logger.Error("remove", slog.String("filename", filename), slog.Any("error", err))
		s.writeError(w, http.StatusInternalServerError, "failed to reset image")
		return
	}
	s.logger.Info("image removed", slog.String("filename", filename))
	s.writeJSON(w, http.StatusOK, ImageResponse{Success: true})
}
