// AirDefence - Air Defence Analytics and War Scenario Prediction
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/airdefence

package training

import (
	"context"
	"fmt"

	"github.com/tomtom215/airdefence/internal/features"
	"github.com/tomtom215/airdefence/internal/ml"
	"github.com/tomtom215/airdefence/internal/models"
)

// Hyperparameters of the three models.
const (
	systemTestSize = 0.25
	warTestSize    = 0.20
	cvFolds        = 5

	systemForestTrees = 200
	systemForestDepth = 8
	systemBoostStages = 150
	systemBoostDepth  = 5

	outcomeForestTrees = 300
	outcomeForestDepth = 10

	winProbTrees = 200
	winProbDepth = 10
)

// trainSystemModel fits model 1 and fills the system fields of bundle.
func (t *Trainer) trainSystemModel(ctx context.Context, systems []models.System, bundle *ml.Bundle) error {
	types := make([]string, len(systems))
	classes := make([]string, len(systems))
	for i := range systems {
		types[i] = systems[i].SystemType
		classes[i] = systems[i].Classification
	}

	var typeEnc, classEnc ml.LabelEncoder
	typeEnc.Fit(types)
	classEnc.Fit(classes)

	X := make([][]float64, len(systems))
	for i := range systems {
		code, err := typeEnc.Transform(systems[i].SystemType)
		if err != nil {
			return err
		}
		X[i] = features.SystemVector(&systems[i], code)
	}
	y, err := classEnc.TransformAll(classes)
	if err != nil {
		return err
	}

	split, err := ml.TrainTestSplit(len(X), systemTestSize, y, t.cfg.Seed)
	if err != nil {
		return fmt.Errorf("split systems: %w", err)
	}
	var scaler ml.StandardScaler
	xTrain, err := scaler.FitTransform(ml.Rows(X, split.Train))
	if err != nil {
		return fmt.Errorf("scale systems: %w", err)
	}
	xTest, err := scaler.Transform(ml.Rows(X, split.Test))
	if err != nil {
		return fmt.Errorf("scale systems: %w", err)
	}
	yTrain, yTest := ml.Ints(y, split.Train), ml.Ints(y, split.Test)

	newForest := func() ml.Classifier {
		return ml.NewRandomForestClassifier(t.modelOpts(
			ml.WithNEstimators(systemForestTrees),
			ml.WithMaxDepth(systemForestDepth),
			ml.WithBalancedClassWeight(),
		)...)
	}
	newBoosting := func() ml.Classifier {
		return ml.NewGradientBoostingClassifier(t.modelOpts(
			ml.WithNEstimators(systemBoostStages),
			ml.WithMaxDepth(systemBoostDepth),
		)...)
	}

	forest := newForest()
	if err := forest.Fit(ctx, xTrain, yTrain); err != nil {
		return fmt.Errorf("fit system forest: %w", err)
	}
	forestAcc, err := score(forest, xTest, yTest)
	if err != nil {
		return err
	}

	candidates := map[string]float64{forest.Name(): features.Round(forestAcc, 4)}
	winner, winnerAcc, newWinner := forest, forestAcc, newForest
	var system ml.SystemClassifier
	system.Forest = forest.(*ml.RandomForestClassifier)

	boosting := newBoosting()
	switch err := boosting.Fit(ctx, xTrain, yTrain); {
	case err == nil:
		boostAcc, err := score(boosting, xTest, yTest)
		if err != nil {
			return err
		}
		candidates[boosting.Name()] = features.Round(boostAcc, 4)
		if boostAcc > forestAcc {
			winner, winnerAcc, newWinner = boosting, boostAcc, newBoosting
			system = ml.SystemClassifier{Boosting: boosting.(*ml.GradientBoostingClassifier)}
		}
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		t.logger.Warn().Err(err).Msg("gradient boosting candidate skipped")
	}

	folds, err := ml.StratifiedKFold(yTrain, cvFolds, t.cfg.Seed)
	if err != nil {
		return fmt.Errorf("cross-validation folds: %w", err)
	}
	cv, err := ml.CrossValScore(ctx, newWinner, xTrain, yTrain, folds)
	if err != nil {
		return fmt.Errorf("cross-validate system model: %w", err)
	}
	cvMean, cvStd := ml.MeanStd(cv)

	bundle.SystemTypes = typeEnc
	bundle.Classes = classEnc
	bundle.SystemScaler = scaler
	bundle.SystemModel = system
	bundle.Metadata.Model1Accuracy = features.Round(winnerAcc, 4)
	bundle.Metadata.Model1 = ml.ModelInfo{
		Algorithm:    winner.Name(),
		Task:         "system classification",
		Accuracy:     features.Round(winnerAcc, 4),
		CVMean:       features.Round(cvMean, 4),
		CVStd:        features.Round(cvStd, 4),
		Candidates:   candidates,
		Classes:      classEnc.Classes,
		Features:     features.SystemFeatureNames,
		NEstimators:  paramsOf(system).NEstimators,
		MaxDepth:     paramsOf(system).MaxDepth,
		ClassWeight:  paramsOf(system).ClassWeight,
		TrainSamples: len(split.Train),
		TestSamples:  len(split.Test),
	}

	t.logger.Info().
		Str("algorithm", winner.Name()).
		Float64("accuracy", winnerAcc).
		Float64("cv_mean", cvMean).
		Msg("system classifier trained")
	return nil
}

// trainWarModels fits models 2 and 3 and fills the war fields of bundle.
func (t *Trainer) trainWarModels(ctx context.Context, scenarios []models.Scenario, bundle *ml.Bundle) error {
	X := make([][]float64, len(scenarios))
	outcomes := make([]string, len(scenarios))
	win := make([]float64, len(scenarios))
	for i := range scenarios {
		X[i] = features.ScenarioVector(&scenarios[i])
		outcomes[i] = scenarios[i].Outcome
		win[i] = scenarios[i].AttackerWinProbability
	}

	var outcomeEnc ml.LabelEncoder
	outcomeEnc.Fit(outcomes)
	y, err := outcomeEnc.TransformAll(outcomes)
	if err != nil {
		return err
	}

	split, err := ml.TrainTestSplit(len(X), warTestSize, y, t.cfg.Seed)
	if err != nil {
		return fmt.Errorf("split scenarios: %w", err)
	}
	var scaler ml.StandardScaler
	xTrain, err := scaler.FitTransform(ml.Rows(X, split.Train))
	if err != nil {
		return fmt.Errorf("scale scenarios: %w", err)
	}
	xTest, err := scaler.Transform(ml.Rows(X, split.Test))
	if err != nil {
		return fmt.Errorf("scale scenarios: %w", err)
	}

	outcome := ml.NewRandomForestClassifier(t.modelOpts(
		ml.WithNEstimators(outcomeForestTrees),
		ml.WithMaxDepth(outcomeForestDepth),
		ml.WithBalancedClassWeight(),
	)...)
	if err := outcome.Fit(ctx, xTrain, ml.Ints(y, split.Train)); err != nil {
		return fmt.Errorf("fit outcome forest: %w", err)
	}
	outcomeAcc, err := score(outcome, xTest, ml.Ints(y, split.Test))
	if err != nil {
		return err
	}

	// Model 3 uses an unstratified split over the same rows.
	regSplit, err := ml.TrainTestSplit(len(X), warTestSize, nil, t.cfg.Seed)
	if err != nil {
		return fmt.Errorf("split scenarios: %w", err)
	}
	rTrain, err := scaler.Transform(ml.Rows(X, regSplit.Train))
	if err != nil {
		return err
	}
	rTest, err := scaler.Transform(ml.Rows(X, regSplit.Test))
	if err != nil {
		return err
	}

	reg := ml.NewRandomForestRegressor(t.modelOpts(
		ml.WithNEstimators(winProbTrees),
		ml.WithMaxDepth(winProbDepth),
	)...)
	if err := reg.Fit(ctx, rTrain, ml.Floats(win, regSplit.Train)); err != nil {
		return fmt.Errorf("fit win probability forest: %w", err)
	}
	pred, err := ml.PredictAllRegressor(reg, rTest)
	if err != nil {
		return err
	}
	yTrue := ml.Floats(win, regSplit.Test)
	mae, r2 := ml.MeanAbsoluteError(yTrue, pred), ml.R2Score(yTrue, pred)

	bundle.Outcomes = outcomeEnc
	bundle.WarScaler = scaler
	bundle.OutcomeModel = outcome
	bundle.WinProbability = reg
	bundle.Metadata.Model2Accuracy = features.Round(outcomeAcc, 4)
	bundle.Metadata.Model3R2 = features.Round(r2, 4)
	bundle.Metadata.Model2 = ml.ModelInfo{
		Algorithm:    outcome.Name(),
		Task:         "war outcome classification",
		Accuracy:     features.Round(outcomeAcc, 4),
		Classes:      outcomeEnc.Classes,
		Features:     features.WarFeatureNames,
		NEstimators:  outcomeForestTrees,
		MaxDepth:     outcomeForestDepth,
		ClassWeight:  ml.ClassWeightBalanced,
		TrainSamples: len(split.Train),
		TestSamples:  len(split.Test),
	}
	bundle.Metadata.Model3 = ml.ModelInfo{
		Algorithm:    reg.Name(),
		Task:         "attacker win probability regression",
		MAE:          features.Round(mae, 4),
		R2:           features.Round(r2, 4),
		Features:     features.WarFeatureNames,
		NEstimators:  winProbTrees,
		MaxDepth:     winProbDepth,
		TrainSamples: len(regSplit.Train),
		TestSamples:  len(regSplit.Test),
	}

	t.logger.Info().
		Float64("outcome_accuracy", outcomeAcc).
		Float64("win_prob_mae", mae).
		Float64("win_prob_r2", r2).
		Msg("war models trained")
	return nil
}

func score(c ml.Classifier, X [][]float64, y []int) (float64, error) {
	pred, err := ml.PredictAll(c, X)
	if err != nil {
		return 0, fmt.Errorf("evaluate %s: %w", c.Name(), err)
	}
	return ml.Accuracy(y, pred), nil
}

func paramsOf(s ml.SystemClassifier) ml.Params {
	if s.Forest != nil {
		return s.Forest.Params
	}
	return s.Boosting.Params
}
