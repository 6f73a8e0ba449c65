package auth

import (
	"net/http"

	"go.uber.org/zap"

	"MiniShop/pkg/kit"
)

const (
	msgCredentialsRequired = "Username and password are required."
	msgUserCreated         = "User created successfully."
	msgUnknownUser         = "Cannot find user."
	msgBadPassword         = "Incorrect password."
	msgBadJSON             = "Invalid JSON body."
	msgServerError         = "Internal server error."
)

type Server struct {
	Log    *zap.Logger
	Store  UserStore
	Hasher *Hasher
	JWT    *TokenMaker
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
}

func (s *Server) SignupHandler() http.HandlerFunc { return s.handleSignup }
func (s *Server) LoginHandler() http.HandlerFunc  { return s.handleLogin }

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteText(w, http.StatusBadRequest, msgBadJSON)
		return
	}

	if req.Username == "" || req.Password == "" {
		kit.WriteText(w, http.StatusBadRequest, msgCredentialsRequired)
		return
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		s.Log.Error("hash password", zap.Error(err))
		kit.WriteText(w, http.StatusInternalServerError, msgServerError)
		return
	}

	if err := s.Store.Add(r.Context(), User{Username: req.Username, Hash: hash}); err != nil {
		s.Log.Error("store user", zap.Error(err))
		kit.WriteText(w, http.StatusInternalServerError, msgServerError)
		return
	}

	kit.WriteText(w, http.StatusCreated, msgUserCreated)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteText(w, http.StatusBadRequest, msgBadJSON)
		return
	}

	u, found, err := s.Store.FindByUsername(r.Context(), req.Username)
	if err != nil {
		s.Log.Error("find user", zap.Error(err))
		kit.WriteText(w, http.StatusInternalServerError, msgServerError)
		return
	}
	if !found {
		kit.WriteText(w, http.StatusBadRequest, msgUnknownUser)
		return
	}

	if !s.Hasher.Verify(req.Password, u.Hash) {
		kit.WriteText(w, http.StatusUnauthorized, msgBadPassword)
		return
	}

	tok, err := s.JWT.New(u.Username)
	if err != nil {
		s.Log.Error("token issue", zap.Error(err))
		kit.WriteText(w, http.StatusInternalServerError, msgServerError)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{AccessToken: tok, Username: u.Username})
}
